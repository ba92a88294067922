// Package repository defines the snapshot store interface and errors.
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/metrics"
)

// TTL-based, in-memory Store implementation.
//
// Entries carry the fetch timestamp and become invisible once older than
// the configured TTL. Expired entries are reaped lazily on reads and by
// an optional background sweep; readers never see a stale snapshot.

// Default configuration constants.
const (
	defaultTTL           = 15 * time.Minute
	defaultSweepInterval = time.Minute
)

// entry pins the watchlist position so kind views keep their board order.
type entry struct {
	snap  model.Snapshot
	order int
}

// MemStore is a mutex-guarded snapshot map with TTL eviction.
type MemStore struct {
	mu            sync.RWMutex
	entries       map[string]entry
	nextOrder     int
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// NewMemStore creates a memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		entries:       make(map[string]entry),
		ttl:           defaultTTL,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
		stop:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.sweepLoop()

	return s
}

// Put stores or replaces the snapshot for its symbol key.
func (s *MemStore) Put(_ context.Context, snap model.Snapshot) error {
	key := snap.Symbol.Key()

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e.order = s.nextOrder
		s.nextOrder++
	}
	e.snap = snap
	s.entries[key] = e
	size := len(s.entries)
	s.mu.Unlock()

	metrics.UpdateCacheSize(size)
	return nil
}

// Get returns the snapshot for a symbol key.
func (s *MemStore) Get(_ context.Context, key string) (model.Snapshot, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || s.expired(e.snap) {
		metrics.RecordCacheMiss()
		return model.Snapshot{}, ErrNotFound
	}

	metrics.RecordCacheHit()
	return e.snap, nil
}

// All returns every live snapshot, ordered by symbol key.
func (s *MemStore) All(_ context.Context) []model.Snapshot {
	s.mu.RLock()
	out := make([]model.Snapshot, 0, len(s.entries))
	for _, e := range s.entries {
		if !s.expired(e.snap) {
			out = append(out, e.snap)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol.Key() < out[j].Symbol.Key()
	})
	return out
}

// ByKind returns live snapshots of one kind in insertion order.
func (s *MemStore) ByKind(_ context.Context, kind model.Kind) []model.Snapshot {
	s.mu.RLock()
	type ordered struct {
		snap  model.Snapshot
		order int
	}
	picked := make([]ordered, 0, len(s.entries))
	for _, e := range s.entries {
		if e.snap.Symbol.Kind == kind && !s.expired(e.snap) {
			picked = append(picked, ordered{snap: e.snap, order: e.order})
		}
	}
	s.mu.RUnlock()

	sort.Slice(picked, func(i, j int) bool { return picked[i].order < picked[j].order })

	out := make([]model.Snapshot, len(picked))
	for i, p := range picked {
		out[i] = p.snap
	}
	return out
}

// TopMovers returns the n largest one-day moves in each direction.
func (s *MemStore) TopMovers(ctx context.Context, n int) (gainers, losers []Mover) {
	if n <= 0 {
		return nil, nil
	}

	all := s.All(ctx)
	movers := make([]Mover, 0, len(all))
	for _, snap := range all {
		movers = append(movers, Mover{
			Symbol:    snap.Symbol,
			Price:     snap.Stats.Price,
			ChangePct: snap.Stats.ChangePct1D(),
		})
	}

	sort.SliceStable(movers, func(i, j int) bool { return movers[i].ChangePct > movers[j].ChangePct })

	for _, m := range movers {
		if m.ChangePct > 0 && len(gainers) < n {
			gainers = append(gainers, m)
		}
	}
	for i := len(movers) - 1; i >= 0; i-- {
		if movers[i].ChangePct < 0 && len(losers) < n {
			losers = append(losers, movers[i])
		}
	}
	return gainers, losers
}

// MaxAge returns the age in seconds of the oldest live snapshot.
func (s *MemStore) MaxAge(_ context.Context) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var oldest time.Time
	for _, e := range s.entries {
		if s.expired(e.snap) {
			continue
		}
		if oldest.IsZero() || e.snap.FetchedAt.Before(oldest) {
			oldest = e.snap.FetchedAt
		}
	}
	if oldest.IsZero() {
		return 0
	}
	return s.now().Sub(oldest).Seconds()
}

// Count returns the number of live snapshots.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.entries {
		if !s.expired(e.snap) {
			n++
		}
	}
	return n
}

// Close stops the background sweep.
func (s *MemStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemStore) expired(snap model.Snapshot) bool {
	return s.ttl > 0 && s.now().Sub(snap.FetchedAt) > s.ttl
}

// sweepLoop reaps expired entries so the map does not grow unbounded
// when symbols leave the watchlist.
func (s *MemStore) sweepLoop() {
	if s.sweepInterval <= 0 {
		return
	}

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemStore) sweep() {
	s.mu.Lock()
	evicted := 0
	for key, e := range s.entries {
		if s.expired(e.snap) {
			delete(s.entries, key)
			evicted++
		}
	}
	size := len(s.entries)
	s.mu.Unlock()

	for i := 0; i < evicted; i++ {
		metrics.RecordCacheEviction()
	}
	metrics.UpdateCacheSize(size)
}
