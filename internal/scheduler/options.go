// Package scheduler drives periodic watchlist refreshes.
package scheduler

import "time"

// Option applies a configuration option to the Scheduler.
type Option func(*Scheduler)

// WithInterval sets the refresh interval.
func WithInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithWarmUp controls the immediate refresh pass at start.
func WithWarmUp(enabled bool) Option {
	return func(s *Scheduler) {
		s.warmUp = enabled
	}
}
