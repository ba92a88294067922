// Package repository defines the snapshot store interface and errors.
package repository

import (
	"context"

	"github.com/okian/macromon/internal/domain/model"
)

// Mover is a one-day move row used by the movers view.
type Mover struct {
	Symbol    model.Symbol `json:"symbol"`
	Price     float64      `json:"price"`
	ChangePct float64      `json:"change_pct_1d"`
}

// Store provides read/write access to the latest computed snapshots.
type Store interface {
	// Put stores or replaces the snapshot for its symbol key.
	Put(ctx context.Context, snap model.Snapshot) error

	// Get returns the snapshot for a symbol key.
	// Returns ErrNotFound if the key is unknown or the entry expired.
	Get(ctx context.Context, key string) (model.Snapshot, error)

	// All returns every live snapshot, ordered by symbol key.
	All(ctx context.Context) []model.Snapshot

	// ByKind returns live snapshots of one kind, in watchlist order
	// when ordering hints were supplied at Put time.
	ByKind(ctx context.Context, kind model.Kind) []model.Snapshot

	// TopMovers returns the n largest one-day moves in each direction,
	// gainers first, ordered by absolute percent change descending.
	TopMovers(ctx context.Context, n int) (gainers, losers []Mover)

	// MaxAge returns the age in seconds of the oldest live snapshot.
	MaxAge(ctx context.Context) float64

	// Count returns the number of live snapshots.
	Count(ctx context.Context) int
}
