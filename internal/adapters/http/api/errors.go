package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrMissingKey = errors.New("missing key")
	ErrAdminOnly  = errors.New("admin role required")
)
