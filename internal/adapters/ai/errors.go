package ai

import "errors"

// Sentinel kinds for AI backend errors. These stay inside the service;
// the boundary only ever sees fallback content.
var (
	ErrNoCredential = errors.New("ai backend credential not configured")
	ErrTimeout      = errors.New("ai backend call timed out")
	ErrService      = errors.New("ai backend call failed")
)
