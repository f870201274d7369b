package cache

import "errors"

// Sentinel kinds for cache errors.
var (
	ErrUnavailable = errors.New("cache unavailable")
	ErrInvalidTTL  = errors.New("invalid cache ttl")
)
