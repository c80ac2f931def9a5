package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"home_relay/internal/models"
	"home_relay/internal/repository/db"
)

type ScheduleSQL struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewScheduleSQL(conn *sql.DB, d db.Dialect) *ScheduleSQL {
	return &ScheduleSQL{db: conn, dialect: d}
}

var _ ScheduleRepo = (*ScheduleSQL)(nil)

const (
	upsertScheduleSQL = `
		INSERT INTO relay_schedule (relay, on_time, duration_s)
		VALUES (?, ?, ?)
		ON CONFLICT (relay) DO UPDATE SET
			on_time=excluded.on_time,
			duration_s=excluded.duration_s
	`

	selectScheduleSQL = `SELECT relay, on_time, duration_s FROM relay_schedule WHERE relay = ?`
)

func (r *ScheduleSQL) Save(ctx context.Context, s models.RelaySchedule) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(upsertScheduleSQL), s.Relay, s.OnTime, s.DurationSec); err != nil {
		return fmt.Errorf("upsert schedule of relay %d: %w", s.Relay, err)
	}
	return nil
}

// Get returns (nil, nil) if the relay has no schedule.
func (r *ScheduleSQL) Get(ctx context.Context, relay int) (*models.RelaySchedule, error) {
	var s models.RelaySchedule
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectScheduleSQL), relay).Scan(&s.Relay, &s.OnTime, &s.DurationSec)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select schedule of relay %d: %w", relay, err)
	}
	return &s, nil
}
