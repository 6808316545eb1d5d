// Package api
// Author: momentics@gmail.com
//
// Lock-free byte ring contract for cross-goroutine producer/consumer.

package api

// ByteRing is a fixed-capacity SPSC byte stream.
//
// Write may be called from exactly one producer goroutine and Read from
// exactly one consumer goroutine. Neither call blocks; both report partial
// progress through the returned byte count.
type ByteRing interface {
	// Write copies a prefix of p into the ring and returns its length.
	Write(p []byte) int
	// Read moves up to len(p) buffered bytes into p and returns the count.
	Read(p []byte) int
	// IsEmpty reports a snapshot of the empty state.
	IsEmpty() bool
	// IsFull reports a snapshot of the full state.
	IsFull() bool
	// Len returns the number of readable bytes.
	Len() int
	// Cap returns the usable capacity (storage size minus the sentinel slot).
	Cap() int
}
