package auth

import "errors"

// Package-level error definitions.
var (
	// ErrEmptySecret is returned when no signing secret is configured.
	ErrEmptySecret = errors.New("jwt secret is empty")

	// ErrMissingToken is returned when no Authorization header is present.
	ErrMissingToken = errors.New("missing authorization")

	// ErrInvalidHeader is returned for a malformed Authorization header.
	ErrInvalidHeader = errors.New("invalid authorization header")

	// ErrUnexpectedMethod is returned for a token signed with the wrong
	// algorithm.
	ErrUnexpectedMethod = errors.New("unexpected signing method")

	// ErrInvalidToken is returned for a token that fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidClaims is returned for a valid token missing claims.
	ErrInvalidClaims = errors.New("invalid claims")
)
