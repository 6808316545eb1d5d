// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Ring counters collector. Values are pushed by the owner of the ring
// off the data path and read back as snapshots.

package control

import (
	"sync"
	"time"
)

// Metric keys published for a ring.
const (
	MetricBytesWritten = "ring.bytes_written"
	MetricBytesRead    = "ring.bytes_read"
	MetricLen          = "ring.len"
	MetricFree         = "ring.free"
	MetricCapacity     = "ring.capacity"
)

// MetricsRegistry holds the latest published metric values.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Updated returns the time of the last Set, zero if none.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}
