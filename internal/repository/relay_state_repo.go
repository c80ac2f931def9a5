package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/repository/db"
)

// RelayStateSQL keeps one status row and one mode row per relay.
type RelayStateSQL struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewRelayStateSQL(conn *sql.DB, d db.Dialect) *RelayStateSQL {
	return &RelayStateSQL{db: conn, dialect: d}
}

var _ RelayStateRepo = (*RelayStateSQL)(nil)

const (
	upsertStatusSQL = `
		INSERT INTO relay_status (relay, status, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (relay) DO UPDATE SET
			status=excluded.status,
			updated_at=excluded.updated_at
	`

	insertDefaultStatusSQL = `INSERT INTO relay_status (relay, status, updated_at) VALUES (?, 0, ?) ON CONFLICT (relay) DO NOTHING`

	selectStatusSQL = `SELECT relay, status, updated_at FROM relay_status WHERE relay = ?`

	upsertModeSQL = `
		INSERT INTO relay_mode (relay, mode, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (relay) DO UPDATE SET
			mode=excluded.mode,
			updated_at=excluded.updated_at
	`

	selectModeSQL = `SELECT relay, mode, updated_at FROM relay_mode WHERE relay = ?`
)

// SaveStatus inserts or updates the status row. A zero UpdateTime is set to now.
func (r *RelayStateSQL) SaveStatus(ctx context.Context, s models.RelayStatus) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(upsertStatusSQL), s.Relay, s.Status, stamp(s.UpdateTime)); err != nil {
		return fmt.Errorf("upsert status of relay %d: %w", s.Relay, err)
	}
	return nil
}

// GetStatus returns (nil, nil) when the relay has no status row.
func (r *RelayStateSQL) GetStatus(ctx context.Context, relay int) (*models.RelayStatus, error) {
	var s models.RelayStatus
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectStatusSQL), relay).Scan(&s.Relay, &s.Status, &s.UpdateTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select status of relay %d: %w", relay, err)
	}
	s.UpdateTime = s.UpdateTime.UTC()
	return &s, nil
}

// EnsureStatus creates the default row with a conditional insert, then reads it back.
func (r *RelayStateSQL) EnsureStatus(ctx context.Context, relay int) (models.RelayStatus, error) {
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(insertDefaultStatusSQL), relay, stamp(time.Time{})); err != nil {
		return models.RelayStatus{}, fmt.Errorf("insert default status of relay %d: %w", relay, err)
	}
	s, err := r.GetStatus(ctx, relay)
	if err != nil {
		return models.RelayStatus{}, err
	}
	if s == nil {
		return models.RelayStatus{}, fmt.Errorf("status of relay %d missing after insert", relay)
	}
	return *s, nil
}

func (r *RelayStateSQL) SaveMode(ctx context.Context, m models.RelayMode) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(upsertModeSQL), m.Relay, m.Mode, stamp(m.UpdateTime)); err != nil {
		return fmt.Errorf("upsert mode of relay %d: %w", m.Relay, err)
	}
	return nil
}

// GetMode returns (nil, nil) when the relay has no mode row.
func (r *RelayStateSQL) GetMode(ctx context.Context, relay int) (*models.RelayMode, error) {
	var m models.RelayMode
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectModeSQL), relay).Scan(&m.Relay, &m.Mode, &m.UpdateTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select mode of relay %d: %w", relay, err)
	}
	m.UpdateTime = m.UpdateTime.UTC()
	return &m, nil
}
