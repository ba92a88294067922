package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrEmptyAddr   = errors.New("addr must not be empty")
	ErrBadInterval = errors.New("refresh interval and cache ttl must be positive")
)
