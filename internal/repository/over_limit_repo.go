package repository

import (
	"context"
	"database/sql"
	"fmt"

	"home_relay/internal/models"
	"home_relay/internal/repository/db"
)

type OverLimitSQL struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewOverLimitSQL(conn *sql.DB, d db.Dialect) *OverLimitSQL {
	return &OverLimitSQL{db: conn, dialect: d}
}

var _ OverLimitRepo = (*OverLimitSQL)(nil)

const (
	insertOverTempSQL = `INSERT INTO over_temp_log (occurred_at, value) VALUES (?, ?)`
	insertOverHumSQL  = `INSERT INTO over_hum_log (occurred_at, value) VALUES (?, ?)`
)

func (r *OverLimitSQL) Append(ctx context.Context, kind string, rec models.OverLimitRecord) error {
	var q string
	switch kind {
	case models.KindTemperature:
		q = insertOverTempSQL
	case models.KindHumidity:
		q = insertOverHumSQL
	default:
		return fmt.Errorf("unknown over-limit kind %q", kind)
	}
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(q), stamp(rec.Time), rec.Value); err != nil {
		return fmt.Errorf("insert over-%s record: %w", kind, err)
	}
	return nil
}
