// Package cache defines the TTL content-cache contract and its backends.
package cache

import (
	"context"
	"time"
)

// Cache is a key-value store with per-entry TTL. The only contract beyond
// Get/Set is overwrite-by-key; there is no delete.
type Cache interface {
	// Get returns the payload for key. The second return is false on a
	// miss; an entry past its expiry must never be returned.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores payload under key for ttl, replacing any previous entry.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
