// Package inflight tracks symbols whose refresh job is queued or running,
// so a refresh tick never double-enqueues work for the same symbol.
package inflight

import (
	"context"
	"sync"
	"sync/atomic"
)

// Tracker guards against concurrent refreshes of the same symbol.
type Tracker interface {
	// Acquire atomically marks id as in flight. Returns false when the id
	// is already held, true when newly acquired.
	Acquire(ctx context.Context, id string) bool

	// Release clears id so the next tick may enqueue it again. Safe to call
	// for ids that were never acquired.
	Release(ctx context.Context, id string)

	Size() int64
}

// inMemoryTracker implements Tracker with a mutex-guarded set. The set is
// naturally bounded by the watchlist size, so no eviction is needed.
type inMemoryTracker struct {
	mu   sync.Mutex
	held map[string]struct{}
	size atomic.Int64
}

// NewInMemoryTracker creates an in-memory tracker with configuration options.
func NewInMemoryTracker(opts ...Option) Tracker {
	t := &inMemoryTracker{
		held: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Acquire atomically marks id as in flight.
func (t *inMemoryTracker) Acquire(_ context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.held[id]; exists {
		return false
	}
	t.held[id] = struct{}{}
	t.size.Add(1)
	return true
}

// Release clears id.
func (t *inMemoryTracker) Release(_ context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.held[id]; exists {
		delete(t.held, id)
		t.size.Add(-1)
	}
}

// Size returns the number of ids currently in flight.
func (t *inMemoryTracker) Size() int64 {
	return t.size.Load()
}
