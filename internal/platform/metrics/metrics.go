// Package metrics keeps lightweight request counters for the ops endpoint.
package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	requests        uint64
	clientErrors    uint64
	serverErrors    uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

// Record counts one finished request.
func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.requests, 1)
	switch {
	case status >= 500:
		atomic.AddUint64(&c.serverErrors, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// Snapshot returns the counters in a form ready for JSON rendering.
func (c *Collector) Snapshot() map[string]any {
	requests := atomic.LoadUint64(&c.requests)
	avg := float64(0)
	if requests > 0 {
		avg = float64(atomic.LoadUint64(&c.totalDurationMs)) / float64(requests)
	}
	return map[string]any{
		"requestsTotal":     requests,
		"clientErrorsTotal": atomic.LoadUint64(&c.clientErrors),
		"serverErrorsTotal": atomic.LoadUint64(&c.serverErrors),
		"avgDurationMs":     avg,
	}
}
