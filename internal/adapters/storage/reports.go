package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"
)

const reportOpTimeout = 5 * time.Second

// SavedReport is a persisted dashboard report.
type SavedReport struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// ReportRepo persists saved reports.
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo creates a report repository on the given database.
func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// Save stores a report and returns its generated id.
func (r *ReportRepo) Save(ctx context.Context, name, createdBy string, payload json.RawMessage) (SavedReport, error) {
	ctx, cancel := context.WithTimeout(ctx, reportOpTimeout)
	defer cancel()

	rep := SavedReport{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}

	blob := snappy.Encode(nil, payload)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (id, name, created_by, created_at, payload) VALUES (?, ?, ?, ?, ?)`,
		rep.ID, rep.Name, rep.CreatedBy, rep.CreatedAt.Unix(), blob)
	if err != nil {
		return SavedReport{}, fmt.Errorf("insert report: %w", err)
	}

	return rep, nil
}

// Get returns one report with its payload.
func (r *ReportRepo) Get(ctx context.Context, id string) (SavedReport, error) {
	ctx, cancel := context.WithTimeout(ctx, reportOpTimeout)
	defer cancel()

	var (
		rep  SavedReport
		unix int64
		blob []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_by, created_at, payload FROM reports WHERE id = ?`, id).
		Scan(&rep.ID, &rep.Name, &rep.CreatedBy, &unix, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedReport{}, ErrNotFound
	}
	if err != nil {
		return SavedReport{}, fmt.Errorf("query report %s: %w", id, err)
	}

	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return SavedReport{}, fmt.Errorf("decompress report payload: %w", err)
	}
	rep.CreatedAt = time.Unix(unix, 0).UTC()
	rep.Payload = raw
	return rep, nil
}

// List returns report headers without payloads, newest first.
func (r *ReportRepo) List(ctx context.Context, limit, offset int) ([]SavedReport, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	ctx, cancel := context.WithTimeout(ctx, reportOpTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_by, created_at FROM reports ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []SavedReport
	for rows.Next() {
		var (
			rep  SavedReport
			unix int64
		)
		if err := rows.Scan(&rep.ID, &rep.Name, &rep.CreatedBy, &unix); err != nil {
			return nil, err
		}
		rep.CreatedAt = time.Unix(unix, 0).UTC()
		out = append(out, rep)
	}
	return out, rows.Err()
}

// Delete removes a report by id.
func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, reportOpTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
