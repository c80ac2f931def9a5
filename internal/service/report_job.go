package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"home_relay/internal/config"
	"home_relay/internal/logger"
	"home_relay/internal/models"
	"home_relay/internal/report"
)

// Builder produces the report files of one day inside dir.
type Builder interface {
	Build(ctx context.Context, day time.Time, dir string) (models.ReportArtifact, error)
}

// Notifier delivers the report files to one recipient.
type Notifier interface {
	SendReport(ctx context.Context, recipient, xlsxPath, pngPath string, day time.Time) error
}

// JobState is a step of a report job. Every transition is logged.
type JobState string

const (
	JobScheduled   JobState = "SCHEDULED"
	JobBuilding    JobState = "BUILDING"
	JobBuildFailed JobState = "BUILD_FAILED"
	JobBuilt       JobState = "BUILT"
	JobSending     JobState = "SENDING"
	JobSendFailed  JobState = "SEND_FAILED"
	JobSent        JobState = "SENT"
	JobCleanup     JobState = "CLEANUP"
	JobDone        JobState = "DONE"
)

// ReportJobService runs one background job per accepted report request.
type ReportJobService struct {
	builder  Builder
	notifier Notifier
	dir      string
	timeout  time.Duration
	log      *logger.Logger

	wg sync.WaitGroup
}

func NewReportJobService(builder Builder, notifier Notifier, cfg config.ReportConfig, log *logger.Logger) *ReportJobService {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportJobService{
		builder:  builder,
		notifier: notifier,
		dir:      cfg.Dir,
		timeout:  cfg.JobTimeout,
		log:      log,
	}
}

// ParseReportDate parses a dd-mm-yyyy date into midnight UTC.
func ParseReportDate(date string) (time.Time, error) {
	day, err := time.Parse(report.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, &BadRequestError{Msg: fmt.Sprintf("invalid date %q, expected dd-mm-yyyy", date)}
	}
	return day, nil
}

// Submit validates the date and starts the job. It never waits for the job;
// build and delivery failures, including a bad recipient, are only logged.
func (s *ReportJobService) Submit(email, date string) (string, error) {
	day, err := ParseReportDate(date)
	if err != nil {
		return "", err
	}
	email = strings.TrimSpace(email)

	id := uuid.NewString()
	s.log.Infow("report_job_scheduled", "state", JobScheduled, "job_id", id, "date", day.Format(report.DateLayout), "recipient", email)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runJob(id, email, day)
	}()

	return fmt.Sprintf("Report for %s is being generated and will be sent to %s", day.Format(report.DateLayout), email), nil
}

// Wait blocks until all submitted jobs are done.
func (s *ReportJobService) Wait() {
	s.wg.Wait()
}

// runJob builds, sends and cleans up. It returns the outcome state
// (JobBuildFailed, JobSendFailed or JobSent); cleanup runs in every case.
func (s *ReportJobService) runJob(id, email string, day time.Time) (outcome JobState) {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log := s.log.With("job_id", id, "date", day.Format(report.DateLayout), "recipient", email)
	dir := filepath.Join(s.dir, id)

	defer func() {
		log.Debugw("report_job_state", "state", JobCleanup)
		if err := os.RemoveAll(dir); err != nil {
			log.Errorw("report_job_cleanup_failed", "dir", dir, "error", err)
		}
		log.Infow("report_job_done", "state", JobDone, "outcome", outcome)
	}()

	log.Debugw("report_job_state", "state", JobBuilding)
	art, err := s.builder.Build(ctx, day, dir)
	if err != nil {
		var noData *report.NoDataError
		if errors.As(err, &noData) {
			log.Warnw("report_job_build_failed", "state", JobBuildFailed, "reason", "no_data", "error", err)
		} else {
			log.Errorw("report_job_build_failed", "state", JobBuildFailed, "error", err)
		}
		return JobBuildFailed
	}
	log.Debugw("report_job_state", "state", JobBuilt, "files", art.Paths())

	log.Debugw("report_job_state", "state", JobSending)
	if err := s.notifier.SendReport(ctx, email, art.SpreadsheetPath, art.ChartPath, day); err != nil {
		log.Errorw("report_job_send_failed", "state", JobSendFailed, "error", err)
		return JobSendFailed
	}
	log.Infow("report_job_sent", "state", JobSent)
	return JobSent
}
