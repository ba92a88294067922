package queue

import "errors"

// Package-level error definitions.
var (
	// ErrClosed is returned by consumers when the queue shut down.
	ErrClosed = errors.New("queue closed")
)
