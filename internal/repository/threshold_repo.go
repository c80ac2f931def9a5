package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"home_relay/internal/models"
	"home_relay/internal/repository/db"
)

type ThresholdSQL struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewThresholdSQL(conn *sql.DB, d db.Dialect) *ThresholdSQL {
	return &ThresholdSQL{db: conn, dialect: d}
}

var _ ThresholdRepo = (*ThresholdSQL)(nil)

const (
	upsertThresholdSQL = `
		INSERT INTO thresholds (kind, min_val, max_val)
		VALUES (?, ?, ?)
		ON CONFLICT (kind) DO UPDATE SET
			min_val=excluded.min_val,
			max_val=excluded.max_val
	`

	selectThresholdSQL = `SELECT min_val, max_val FROM thresholds WHERE kind = ?`
)

// Save inserts or updates the threshold of kind in a single statement.
func (r *ThresholdSQL) Save(ctx context.Context, kind string, t models.Threshold) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(upsertThresholdSQL), kind, t.MinVal, t.MaxVal); err != nil {
		return fmt.Errorf("upsert threshold %q: %w", kind, err)
	}
	return nil
}

// Get returns (nil, nil) if the threshold was never set.
func (r *ThresholdSQL) Get(ctx context.Context, kind string) (*models.Threshold, error) {
	var t models.Threshold
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectThresholdSQL), kind).Scan(&t.MinVal, &t.MaxVal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select threshold %q: %w", kind, err)
	}
	return &t, nil
}
