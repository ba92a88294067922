// Package repository defines the snapshot store interface and errors.
package repository

import "time"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithTTL sets how long a snapshot stays visible after its fetch time.
// A zero or negative TTL disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *MemStore) {
		s.ttl = ttl
	}
}

// WithSweepInterval sets the background eviction interval.
// A zero or negative interval disables the sweep.
func WithSweepInterval(interval time.Duration) Option {
	return func(s *MemStore) {
		s.sweepInterval = interval
	}
}

// WithClock sets the time source, used by tests to force expiry.
func WithClock(now func() time.Time) Option {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}
