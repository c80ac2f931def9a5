package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"home_relay/internal/config"
	"home_relay/internal/logger"
	"home_relay/internal/report"
)

// submitter is the part of Reports the scheduler needs.
type submitter interface {
	Submit(email, date string) (string, error)
}

// DailyReportService submits yesterday's report to a fixed recipient
// once per UTC day, after the configured time of day.
type DailyReportService struct {
	jobs      submitter
	enabled   bool
	recipient string
	at        time.Duration // offset from midnight
	now       func() time.Time
	log       *logger.Logger

	lastDay string

	done     chan struct{}
	doneOnce sync.Once
}

func NewDailyReportService(jobs submitter, cfg config.DailyReportConfig, log *logger.Logger) (*DailyReportService, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &DailyReportService{
		jobs:      jobs,
		enabled:   cfg.Enabled,
		recipient: cfg.Recipient,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
		done:      make(chan struct{}),
	}
	if !cfg.Enabled {
		return s, nil
	}
	at, err := time.Parse(config.DailyAtLayout, cfg.At)
	if err != nil {
		return nil, fmt.Errorf("parse report.daily.at %q: %w", cfg.At, err)
	}
	s.at = time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute
	return s, nil
}

// Run checks the clock every tick until ctx is canceled.
// It returns at once when the daily report is disabled.
func (s *DailyReportService) Run(ctx context.Context, tick time.Duration) {
	defer s.doneOnce.Do(func() { close(s.done) })
	if !s.enabled {
		return
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.check(s.now())
		}
	}
}

// Done is closed once Run has returned; no Submit happens after that.
func (s *DailyReportService) Done() <-chan struct{} {
	return s.done
}

// check submits yesterday's report when now is past the daily time and
// nothing was submitted yet today. It reports whether it submitted.
func (s *DailyReportService) check(now time.Time) bool {
	today := now.Format(report.DateLayout)
	if s.lastDay == today {
		return false
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(midnight.Add(s.at)) {
		return false
	}

	// one attempt per day, even when the request is rejected
	s.lastDay = today
	date := midnight.AddDate(0, 0, -1).Format(report.DateLayout)
	msg, err := s.jobs.Submit(s.recipient, date)
	if err != nil {
		s.log.Errorw("daily_report_submit_failed", "date", date, "recipient", s.recipient, "error", err)
		return true
	}
	s.log.Infow("daily_report_submitted", "date", date, "recipient", s.recipient, "msg", msg)
	return true
}
