package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/repository/db"
)

type EnvSQL struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewEnvSQL(conn *sql.DB, d db.Dialect) *EnvSQL { return &EnvSQL{db: conn, dialect: d} }

var _ EnvRepo = (*EnvSQL)(nil)

const (
	insertReadingSQL = `INSERT INTO temp_hum_log (recorded_at, temperature, humidity) VALUES (?, ?, ?)`

	selectLatestReadingsSQL = `SELECT recorded_at, temperature, humidity FROM temp_hum_log ORDER BY recorded_at DESC LIMIT ?`

	selectReadingsRangeSQL = `SELECT recorded_at, temperature, humidity FROM temp_hum_log WHERE recorded_at >= ? AND recorded_at <= ? ORDER BY recorded_at ASC`
)

// Append stores one reading. A zero Time is stamped with the current UTC time.
func (r *EnvSQL) Append(ctx context.Context, reading models.SensorReading) error {
	ts := stamp(reading.Time)
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(insertReadingSQL), ts, reading.Temperature, reading.Humidity); err != nil {
		return fmt.Errorf("insert reading at %s: %w", ts.Format(time.RFC3339Nano), err)
	}
	return nil
}

// Latest returns up to limit readings, newest first.
func (r *EnvSQL) Latest(ctx context.Context, limit int) ([]models.SensorReading, error) {
	if limit <= 0 {
		return []models.SensorReading{}, nil
	}
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(selectLatestReadingsSQL), limit)
	if err != nil {
		return nil, fmt.Errorf("select latest readings: %w", err)
	}
	return scanReadings(rows, limit)
}

func (r *EnvSQL) ListRange(ctx context.Context, from, to time.Time) ([]models.SensorReading, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(selectReadingsRangeSQL), from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("select readings in range: %w", err)
	}
	return scanReadings(rows, 64)
}

func scanReadings(rows *sql.Rows, capHint int) ([]models.SensorReading, error) {
	defer rows.Close()

	out := make([]models.SensorReading, 0, capHint)
	for rows.Next() {
		var s models.SensorReading
		if err := rows.Scan(&s.Time, &s.Temperature, &s.Humidity); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		s.Time = s.Time.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}
	return out, nil
}
