package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrNotFound   = errors.New("achievement not found")
	ErrMissingKey = errors.New("missing record key fields")
)
