package cache

import (
	"context"
	"sync"
	"time"
)

// entry pairs a payload with its absolute expiry.
type entry struct {
	payload   []byte
	expiresAt time.Time
}

// Memory implements Cache with a mutex-guarded map and lazy eviction.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemory creates an in-memory TTL cache with configuration options.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the payload for key, treating expired entries as misses and
// evicting them on the way out.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return e.payload, true, nil
}

// Set stores payload under key until ttl elapses.
func (m *Memory) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{payload: payload, expiresAt: m.now().Add(ttl)}
	return nil
}

// Len reports the number of live and not-yet-evicted entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
