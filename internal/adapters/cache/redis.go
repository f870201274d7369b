package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis implements Cache on a Redis backend. Expiry is delegated to the
// server via per-key TTLs, so the miss-on-expired invariant holds without
// client-side bookkeeping.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed cache for the given address. password
// may be empty for unauthenticated servers.
func NewRedis(addr, password string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
	}
}

// Get returns the payload for key, or a miss when the key is absent or
// already expired server-side.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return payload, true, nil
}

// Set stores payload under key with the given TTL.
func (r *Redis) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// Close releases the underlying client connections.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Ping verifies connectivity, used at startup to fail fast on a bad
// redis_addr before the service accepts traffic.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}
