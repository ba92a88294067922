package yahoo

import "errors"

// Package-level error definitions.
var (
	// ErrUpstreamStatus is returned when Yahoo responds with a non-200
	// status or an embedded error payload.
	ErrUpstreamStatus = errors.New("unexpected upstream status")

	// ErrEmptyResult is returned when the chart payload contains no data.
	ErrEmptyResult = errors.New("chart result is empty")
)
