package fred

import "errors"

// Package-level error definitions.
var (
	// ErrMissingAPIKey is returned when no FRED API key is configured.
	ErrMissingAPIKey = errors.New("fred api key is not configured")

	// ErrUpstreamStatus is returned when FRED responds with a non-200 status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
)
