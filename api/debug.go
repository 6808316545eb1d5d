// Package api
// Author: momentics
//
// Live ring introspection.

package api

// Debug exposes runtime introspection of a ring and its platform.
type Debug interface {
	// DumpState emits a snapshot of all registered probes.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}
