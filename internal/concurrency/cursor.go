// File: internal/concurrency/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor arithmetic shared by the byte ring read and write paths.

package concurrency

import "github.com/momentics/hioload-ring/api"

// advance moves pos by offset slots around a ring of n slots.
// |offset| must be strictly less than n; larger moves panic.
func advance(pos uint64, offset int, n uint64) uint64 {
	mag := uint64(offset)
	if offset < 0 {
		mag = uint64(-offset)
	}
	if mag >= n {
		panic(api.NewError(api.ErrCodeContract, "cursor advance must be smaller than ring size").
			WithContext("offset", offset).
			WithContext("size", n))
	}
	if offset >= 0 {
		next := pos + mag
		if next >= n {
			next -= n
		}
		return next
	}
	if pos >= mag {
		return pos - mag
	}
	return n - (mag - pos)
}
