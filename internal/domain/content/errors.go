package content

import "errors"

// Sentinel kinds for content generation errors.
var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
