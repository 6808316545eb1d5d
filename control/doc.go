// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, counters and debug introspection for hioload-ring.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads and merged updates with reload listeners
//   - A metrics registry fed from ring counters
//   - Probe registration for ring cursors and platform facts
//
// Nothing in this package is touched by the ring's Read/Write path.
package control
