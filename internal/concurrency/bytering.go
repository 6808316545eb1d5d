// File: internal/concurrency/bytering.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ByteRing is a fixed-size SPSC byte ring with atomic index cursors,
// each cursor padded onto its own cache line.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*ByteRing)(nil)

// ByteRing moves raw bytes from one producer goroutine to one consumer
// goroutine without locks.
//
// read == write means empty, so one slot of storage is never filled and the
// usable capacity is len(storage)-1. The write cursor and the written total
// are stored only by the producer; the read cursor and the read total only
// by the consumer. sync/atomic operations are sequentially consistent, so a
// cursor store publishes every storage byte copied before it.
type ByteRing struct {
	storage []byte
	size    uint64

	_       cpu.CacheLinePad
	write   atomic.Uint64
	written atomic.Uint64
	_       cpu.CacheLinePad
	read    atomic.Uint64
	drained atomic.Uint64
	_       cpu.CacheLinePad
}

// NewByteRing allocates a ring whose storage holds size bytes.
// size must be at least 2; one byte is reserved as the sentinel slot.
func NewByteRing(size int) *ByteRing {
	if size < 2 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "ring size must be at least 2").
			WithContext("size", size))
	}
	r := &ByteRing{
		storage: make([]byte, size),
		size:    uint64(size),
	}
	r.Reset()
	return r
}

// Reset zero-fills storage and rewinds both cursors to slot 0.
// It must not run concurrently with Read or Write.
func (r *ByteRing) Reset() {
	clear(r.storage)
	r.read.Store(0)
	r.write.Store(0)
	r.written.Store(0)
	r.drained.Store(0)
}

// IsEmpty reports whether the cursors meet. The answer is a snapshot.
func (r *ByteRing) IsEmpty() bool {
	return r.read.Load() == r.write.Load()
}

// IsFull reports whether one more byte would make write catch up with read.
// The answer is a snapshot.
func (r *ByteRing) IsFull() bool {
	return advance(r.write.Load(), 1, r.size) == r.read.Load()
}

// Write copies as much of src as fits and returns the number of bytes copied.
// The copied bytes are always a prefix of src. Producer goroutine only.
func (r *ByteRing) Write(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	w := r.write.Load()
	rd := r.read.Load()
	total := 0

	// Free run from write to the physical end. When read sits at slot 0 the
	// last slot is the sentinel and stays empty.
	if rd <= w {
		limit := r.size
		if rd == 0 {
			limit--
		}
		if space := limit - w; space > 0 {
			n := copy(r.storage[w:limit], src)
			w = advance(w, n, r.size)
			total += n
		}
	}

	// Free run from write up to the slot just before read.
	if total < len(src) && w < rd {
		end := advance(rd, -1, r.size)
		if space := end - w; space > 0 {
			n := copy(r.storage[w:end], src[total:])
			w = advance(w, n, r.size)
			total += n
		}
	}

	if total == 0 {
		return 0
	}
	r.write.Store(w)
	r.written.Add(uint64(total))
	return total
}

// Read moves up to len(dst) bytes out of the ring and returns the count.
// Consumer goroutine only.
func (r *ByteRing) Read(dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	w := r.write.Load()
	rd := r.read.Load()
	total := 0

	// Data wrapped past the physical end: drain the tail run first.
	if w < rd {
		n := copy(dst, r.storage[rd:])
		rd = advance(rd, n, r.size)
		total += n
	}

	if total < len(dst) && rd < w {
		n := copy(dst[total:], r.storage[rd:w])
		rd = advance(rd, n, r.size)
		total += n
	}

	if total == 0 {
		return 0
	}
	r.read.Store(rd)
	r.drained.Add(uint64(total))
	return total
}

// Len returns the number of readable bytes at the time of the call.
func (r *ByteRing) Len() int {
	rd := r.read.Load()
	w := r.write.Load()
	if w >= rd {
		return int(w - rd)
	}
	return int(r.size - rd + w)
}

// Free returns the number of writable bytes at the time of the call.
func (r *ByteRing) Free() int {
	return r.Cap() - r.Len()
}

// Cap returns the usable capacity, one less than the storage size.
func (r *ByteRing) Cap() int {
	return int(r.size) - 1
}

// Size returns the storage size including the sentinel slot.
func (r *ByteRing) Size() int {
	return int(r.size)
}

// Cursors returns a snapshot of the read and write slot indices.
func (r *ByteRing) Cursors() (read, write uint64) {
	return r.read.Load(), r.write.Load()
}

// Written returns the total bytes accepted by Write since the last Reset.
func (r *ByteRing) Written() uint64 {
	return r.written.Load()
}

// Drained returns the total bytes handed out by Read since the last Reset.
func (r *ByteRing) Drained() uint64 {
	return r.drained.Load()
}
