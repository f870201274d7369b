package cache

import "time"

// Option applies a configuration option to the in-memory cache.
type Option func(*Memory)

// WithClock injects the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}
