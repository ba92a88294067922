// Package inflight tracks symbols whose refresh job is queued or running.
package inflight

// Option applies a configuration option to the in-memory tracker.
type Option func(*inMemoryTracker)

// WithCapacityHint pre-sizes the tracking set, typically to the watchlist
// length.
func WithCapacityHint(n int) Option {
	return func(t *inMemoryTracker) {
		if n > 0 {
			t.held = make(map[string]struct{}, n)
		}
	}
}
