package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang/snappy"

	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/metrics"
)

const historyOpTimeout = 5 * time.Second

// HistoryRepo persists fetched series so restarts and report generation
// can reach past observations. Payloads are snappy-compressed JSON; a
// full daily series for one symbol is a few KB compressed.
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a history repository on the given database.
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Append stores one capture of a series under its symbol key.
func (r *HistoryRepo) Append(ctx context.Context, key string, series model.Series) error {
	ctx, cancel := context.WithTimeout(ctx, historyOpTimeout)
	defer cancel()

	raw, err := json.Marshal(series)
	if err != nil {
		metrics.RecordHistoryWriteError()
		return fmt.Errorf("encode history payload: %w", err)
	}
	blob := snappy.Encode(nil, raw)

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO history (series_key, captured_at, payload) VALUES (?, ?, ?)`,
		key, time.Now().Unix(), blob)
	if err != nil {
		metrics.RecordHistoryWriteError()
		return fmt.Errorf("insert history %s: %w", key, err)
	}

	metrics.RecordHistoryWrite()
	return nil
}

// Latest returns the most recent capture for a symbol key.
func (r *HistoryRepo) Latest(ctx context.Context, key string) (model.Series, error) {
	ctx, cancel := context.WithTimeout(ctx, historyOpTimeout)
	defer cancel()

	var blob []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM history WHERE series_key = ? ORDER BY captured_at DESC, id DESC LIMIT 1`,
		key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Series{}, ErrNotFound
	}
	if err != nil {
		return model.Series{}, fmt.Errorf("query history %s: %w", key, err)
	}

	return decodeSeries(blob)
}

// Captures returns capture times for a symbol key, newest first.
func (r *HistoryRepo) Captures(ctx context.Context, key string, limit int) ([]time.Time, error) {
	if limit <= 0 {
		limit = 100
	}
	ctx, cancel := context.WithTimeout(ctx, historyOpTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT captured_at FROM history WHERE series_key = ? ORDER BY captured_at DESC LIMIT ?`,
		key, limit)
	if err != nil {
		return nil, fmt.Errorf("query history captures %s: %w", key, err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var unix int64
		if err := rows.Scan(&unix); err != nil {
			return nil, err
		}
		out = append(out, time.Unix(unix, 0).UTC())
	}
	return out, rows.Err()
}

// Prune removes captures older than the cutoff and returns the row count.
func (r *HistoryRepo) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, historyOpTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE captured_at < ?`, olderThan.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return res.RowsAffected()
}

func decodeSeries(blob []byte) (model.Series, error) {
	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return model.Series{}, fmt.Errorf("decompress history payload: %w", err)
	}
	var s model.Series
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.Series{}, fmt.Errorf("decode history payload: %w", err)
	}
	return s, nil
}
