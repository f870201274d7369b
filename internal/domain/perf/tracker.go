// Package perf tracks processing latency against the advisory SLA.
package perf

import (
	"sync"
	"time"
)

// DefaultSLA is the advisory processing-time target. Exceeding it never
// fails a call; it only flips the compliance flag and bumps a counter.
const DefaultSLA = 2000 * time.Millisecond

// Stats is a point-in-time snapshot of the tracker.
type Stats struct {
	APICallCount      int64   `json:"api_call_count"`
	AverageResponseMS float64 `json:"average_response_ms"`
	SLAViolations     int64   `json:"sla_violations"`
	CacheHits         int64   `json:"cache_hits"`
	CacheMisses       int64   `json:"cache_misses"`
}

// Tracker is an injectable accumulator for call latency and cache
// effectiveness. Each owner gets its own instance; there is no global.
type Tracker struct {
	mu          sync.Mutex
	sla         time.Duration
	calls       int64
	avgMS       float64
	violations  int64
	cacheHits   int64
	cacheMisses int64
}

// Option applies a configuration option to the Tracker.
type Option func(*Tracker)

// WithSLA overrides the advisory latency target.
func WithSLA(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.sla = d
		}
	}
}

// NewTracker creates a tracker with configuration options.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{sla: DefaultSLA}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SLA returns the configured latency target.
func (t *Tracker) SLA() time.Duration {
	return t.sla
}

// ObserveCall records one call's elapsed time, maintaining a rolling
// average, and reports whether the call met the SLA.
func (t *Tracker) ObserveCall(elapsed time.Duration) bool {
	ms := float64(elapsed) / float64(time.Millisecond)
	compliant := elapsed <= t.sla

	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	t.avgMS += (ms - t.avgMS) / float64(t.calls)
	if !compliant {
		t.violations++
	}
	return compliant
}

// RecordCacheHit notes a content-cache hit.
func (t *Tracker) RecordCacheHit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cacheHits++
}

// RecordCacheMiss notes a content-cache miss.
func (t *Tracker) RecordCacheMiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cacheMisses++
}

// Snapshot returns the current counters.
func (t *Tracker) Snapshot() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		APICallCount:      t.calls,
		AverageResponseMS: t.avgMS,
		SLAViolations:     t.violations,
		CacheHits:         t.cacheHits,
		CacheMisses:       t.cacheMisses,
	}
}
