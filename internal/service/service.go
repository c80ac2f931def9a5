package service

import (
	"context"
	"time"

	"home_relay/internal/config"
	"home_relay/internal/logger"
	"home_relay/internal/models"
	"home_relay/internal/repository"
)

// Env records and lists temperature/humidity samples.
type Env interface {
	Record(ctx context.Context, r models.SensorReading) error
	Latest(ctx context.Context, limit int) ([]models.SensorReading, error)
}

// Thresholds stores the accepted band per measured quantity.
type Thresholds interface {
	SaveThreshold(ctx context.Context, kind string, t models.Threshold) error
	GetThreshold(ctx context.Context, kind string) (models.Threshold, error)
}

// Schedules stores the daily switch-on time of each relay.
type Schedules interface {
	SaveSchedule(ctx context.Context, s models.RelaySchedule) error
	GetSchedule(ctx context.Context, relay int) (models.RelaySchedule, error)
}

// Relays exposes relay status, mode and the on/off history.
type Relays interface {
	GetStatus(ctx context.Context, relay int) (models.RelayStatus, error)
	SetStatus(ctx context.Context, relay, status int) error
	SetMode(ctx context.Context, relay, mode int) (string, error)
	GetMode(ctx context.Context, relay int) (models.RelayMode, error)
	RelayLog(ctx context.Context, date string) ([]models.RelayEvent, error)
}

// Alerts records over-limit notifications sent by the device.
type Alerts interface {
	RecordOverLimit(ctx context.Context, kind string, value float64) error
}

// Reports accepts report requests and runs them in the background.
// Wait blocks until every accepted job has finished.
type Reports interface {
	Submit(email, date string) (string, error)
	Wait()
}

// DailyReport submits yesterday's report once per day.
// Stop via context cancellation in main() and wait on Done before
// draining report jobs.
type DailyReport interface {
	Run(ctx context.Context, tick time.Duration)
	Done() <-chan struct{}
}

// Service aggregates all sub-services.
type Service struct {
	Env
	Thresholds
	Schedules
	Relays
	Alerts
	Reports
	DailyReport
}

// Deps are the collaborators of the report services that do not live in the Store.
type Deps struct {
	Builder  Builder
	Notifier Notifier
	Report   config.ReportConfig
	Log      *logger.Logger
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, deps Deps) (*Service, error) {
	jobs := NewReportJobService(deps.Builder, deps.Notifier, deps.Report, deps.Log)
	daily, err := NewDailyReportService(jobs, deps.Report.Daily, deps.Log)
	if err != nil {
		return nil, err
	}
	return &Service{
		Env:         NewEnvService(repos.Env),
		Thresholds:  NewThresholdService(repos.Thresholds),
		Schedules:   NewScheduleService(repos.Schedules),
		Relays:      NewRelayService(repos.RelayState, repos.RelayLog),
		Alerts:      NewAlertService(repos.OverLimit),
		Reports:     jobs,
		DailyReport: daily,
	}, nil
}
