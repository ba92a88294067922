// Package storage persists history snapshots, saved reports and users.
package storage

import "errors"

// Package-level error definitions.
var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("row not found")

	// ErrUserExists is returned when creating a duplicate username.
	ErrUserExists = errors.New("username already exists")

	// ErrBadCredentials is returned when a password check fails.
	ErrBadCredentials = errors.New("invalid username or password")
)
