// Package repository defines the snapshot store interface and errors.
package repository

import "errors"

// Package-level error definitions.
var (
	// ErrNotFound is returned when a symbol key has no live snapshot.
	ErrNotFound = errors.New("snapshot not found")
)
