// File: facade/producer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Producer keeps bytes that did not fit into the ring yet and retries them
// on the next call, so callers can hand over whole buffers without spinning.

package facade

import (
	"github.com/eapache/queue"
)

// Producer is a producer-side helper around Ring.Write.
//
// Bytes are delivered in the order they were sent; a chunk that only partly
// fits stays as the current head until the ring has room. Producer is not
// safe for concurrent use and must live on the ring's producer goroutine.
type Producer struct {
	ring    *Ring
	head    []byte       // partly written chunk, sent before the backlog
	backlog *queue.Queue // of []byte, each an owned copy
	pending int
}

func newProducer(r *Ring) *Producer {
	return &Producer{
		ring:    r,
		backlog: queue.New(),
	}
}

// Send writes as much of b as fits right now and queues the rest.
// It returns the number of bytes of b that reached the ring during this call.
// Older queued bytes are flushed first so ordering is preserved.
func (p *Producer) Send(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	p.Flush()
	if p.pending > 0 {
		p.enqueue(b)
		return 0
	}
	n := p.ring.Write(b)
	if n < len(b) {
		p.enqueue(b[n:])
	}
	return n
}

// Flush moves queued bytes into the ring until it fills or the backlog
// drains, returning the number of bytes moved.
func (p *Producer) Flush() int {
	moved := 0
	for {
		if len(p.head) == 0 {
			if p.backlog.Length() == 0 {
				p.head = nil
				return moved
			}
			p.head = p.backlog.Remove().([]byte)
		}
		n := p.ring.Write(p.head)
		p.head = p.head[n:]
		p.pending -= n
		moved += n
		if len(p.head) > 0 {
			return moved
		}
	}
}

// Pending returns the number of queued bytes not yet in the ring.
func (p *Producer) Pending() int {
	return p.pending
}

// Chunks returns the number of queued chunks, counting a partly sent one.
func (p *Producer) Chunks() int {
	n := p.backlog.Length()
	if len(p.head) > 0 {
		n++
	}
	return n
}

func (p *Producer) enqueue(b []byte) {
	owned := make([]byte, len(b))
	copy(owned, b)
	p.backlog.Add(owned)
	p.pending += len(owned)
}
