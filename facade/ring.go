// File: facade/ring.go
// Unified facade layer for hioload-ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Ring type, which pairs the lock-free SPSC byte ring
// with its control plane: live config, counters and debug probes. The data
// path (Write/Read) goes straight to the ring; the control plane is only
// touched on construction, reload and explicit PublishMetrics calls.

package facade

import (
	"fmt"
	"log"

	"github.com/momentics/hioload-ring/adapters"
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/internal/concurrency"
)

// DefaultCapacity is the storage size selected by DefaultConfig.
const DefaultCapacity = 256

// Config holds parameters fixed for the lifetime of a Ring.
type Config struct {
	Capacity      int  // Storage size in bytes; usable capacity is Capacity-1
	EnableMetrics bool // Whether PublishMetrics pushes counters to Control
	EnableDebug   bool // Whether ring.* debug probes are registered
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Capacity:      DefaultCapacity,
		EnableMetrics: true,
		EnableDebug:   true,
	}
}

// Validate checks the configuration and returns an *api.Error on failure.
func (c *Config) Validate() error {
	if c.Capacity < 2 {
		return api.NewError(api.ErrCodeInvalidArgument, "capacity must be at least 2 bytes").
			WithContext("capacity", c.Capacity)
	}
	return nil
}

// Ring is the public SPSC byte ring.
//
// Exactly one goroutine may call Write (and Producer methods); exactly one
// goroutine may call Read. IsEmpty, IsFull, Len and Free may be called from
// either side and return snapshots.
type Ring struct {
	ring    *concurrency.ByteRing
	control *adapters.ControlAdapter
	config  Config
}

var _ api.ByteRing = (*Ring)(nil)

// New constructs a Ring. A nil cfg selects DefaultConfig.
func New(cfg *Config) (*Ring, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ring init failure: %w", err)
	}
	r := &Ring{
		ring:    concurrency.NewByteRing(cfg.Capacity),
		control: adapters.NewControlAdapter(),
		config:  *cfg,
	}

	r.control.SetConfig(map[string]any{
		control.KeyCapacity: cfg.Capacity,
		control.KeyMetrics:  cfg.EnableMetrics,
		control.KeyDebug:    cfg.EnableDebug,
	})
	r.control.OnReload(r.onReload)

	if cfg.EnableDebug {
		r.registerProbes()
	}
	return r, nil
}

// onReload pins ring.capacity to the construction value.
func (r *Ring) onReload() {
	store := r.control.Config()
	if got := store.Int(control.KeyCapacity, r.config.Capacity); got != r.config.Capacity {
		log.Printf("[facade] ring capacity is fixed at %d, ignoring reload to %d", r.config.Capacity, got)
		store.SetConfig(map[string]any{control.KeyCapacity: r.config.Capacity})
	}
}

func (r *Ring) registerProbes() {
	r.control.RegisterDebugProbe("ring.cursors", func() any {
		rd, wr := r.ring.Cursors()
		return map[string]uint64{"read": rd, "write": wr}
	})
	r.control.RegisterDebugProbe("ring.empty", func() any { return r.ring.IsEmpty() })
	r.control.RegisterDebugProbe("ring.full", func() any { return r.ring.IsFull() })
}

// Write copies the largest prefix of p that fits and returns its length.
// Producer goroutine only.
func (r *Ring) Write(p []byte) int {
	return r.ring.Write(p)
}

// Read fills p with up to len(p) buffered bytes and returns the count.
// Consumer goroutine only.
func (r *Ring) Read(p []byte) int {
	return r.ring.Read(p)
}

// IsEmpty reports whether no bytes are buffered.
func (r *Ring) IsEmpty() bool { return r.ring.IsEmpty() }

// IsFull reports whether no byte can be written.
func (r *Ring) IsFull() bool { return r.ring.IsFull() }

// Len returns buffered bytes.
func (r *Ring) Len() int { return r.ring.Len() }

// Free returns writable bytes.
func (r *Ring) Free() int { return r.ring.Free() }

// Cap returns usable capacity, Config.Capacity-1.
func (r *Ring) Cap() int { return r.ring.Cap() }

// Reset drops buffered bytes and zero-fills storage. Neither the producer
// nor the consumer may be active during Reset.
func (r *Ring) Reset() {
	r.ring.Reset()
}

// PublishMetrics pushes the current counters into Control.
// It is a no-op when metrics are disabled.
func (r *Ring) PublishMetrics() {
	if !r.control.Config().Bool(control.KeyMetrics, r.config.EnableMetrics) {
		return
	}
	r.control.SetMetric(control.MetricBytesWritten, r.ring.Written())
	r.control.SetMetric(control.MetricBytesRead, r.ring.Drained())
	r.control.SetMetric(control.MetricLen, r.ring.Len())
	r.control.SetMetric(control.MetricFree, r.ring.Free())
	r.control.SetMetric(control.MetricCapacity, r.ring.Cap())
}

// Stats publishes metrics and returns the combined metrics and probe snapshot.
func (r *Ring) Stats() map[string]any {
	r.PublishMetrics()
	return r.control.Stats()
}

// GetControl returns the Control interface for config, metrics and probes.
func (r *Ring) GetControl() api.Control {
	return r.control
}

// GetDebugAPI returns the probe registry.
func (r *Ring) GetDebugAPI() api.Debug {
	return r.control.Debug()
}

// NewProducer returns a backlog-buffering writer bound to this ring.
func (r *Ring) NewProducer() *Producer {
	return newProducer(r)
}
