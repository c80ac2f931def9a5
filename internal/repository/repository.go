package repository

import (
	"context"
	"database/sql"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/repository/db"
)

type EnvRepo interface {
	Append(ctx context.Context, r models.SensorReading) error
	Latest(ctx context.Context, limit int) ([]models.SensorReading, error)
	// ListRange returns readings in [from, to] ordered by time ascending.
	ListRange(ctx context.Context, from, to time.Time) ([]models.SensorReading, error)
}

type RelayLogRepo interface {
	Append(ctx context.Context, e models.RelayEvent) error
	// ListRange returns the events of one log (ON or OFF) in [from, to], unordered.
	ListRange(ctx context.Context, action string, from, to time.Time) ([]models.RelayEvent, error)
}

type ThresholdRepo interface {
	Save(ctx context.Context, kind string, t models.Threshold) error
	Get(ctx context.Context, kind string) (*models.Threshold, error)
}

type ScheduleRepo interface {
	Save(ctx context.Context, s models.RelaySchedule) error
	Get(ctx context.Context, relay int) (*models.RelaySchedule, error)
}

type RelayStateRepo interface {
	SaveStatus(ctx context.Context, s models.RelayStatus) error
	GetStatus(ctx context.Context, relay int) (*models.RelayStatus, error)
	// EnsureStatus returns the status row, creating status=0 first if absent.
	EnsureStatus(ctx context.Context, relay int) (models.RelayStatus, error)
	SaveMode(ctx context.Context, m models.RelayMode) error
	GetMode(ctx context.Context, relay int) (*models.RelayMode, error)
}

type OverLimitRepo interface {
	Append(ctx context.Context, kind string, r models.OverLimitRecord) error
}

type Repository struct {
	Env        EnvRepo
	RelayLog   RelayLogRepo
	Thresholds ThresholdRepo
	Schedules  ScheduleRepo
	RelayState RelayStateRepo
	OverLimit  OverLimitRepo
}

func NewRepository(conn *sql.DB, d db.Dialect) *Repository {
	return &Repository{
		Env:        NewEnvSQL(conn, d),
		RelayLog:   NewRelayLogSQL(conn, d),
		Thresholds: NewThresholdSQL(conn, d),
		Schedules:  NewScheduleSQL(conn, d),
		RelayState: NewRelayStateSQL(conn, d),
		OverLimit:  NewOverLimitSQL(conn, d),
	}
}

// stamp normalizes a timestamp before it is written: zero means now, the
// location is UTC and precision is cut to what both drivers keep.
func stamp(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Microsecond)
}
