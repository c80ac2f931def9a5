package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/report"
	"home_relay/internal/repository"
)

type RelayService struct {
	state repository.RelayStateRepo
	log   repository.RelayLogRepo
}

func NewRelayService(state repository.RelayStateRepo, log repository.RelayLogRepo) *RelayService {
	return &RelayService{state: state, log: log}
}

// GetStatus returns the relay status, creating the default OFF row on first read.
func (s *RelayService) GetStatus(ctx context.Context, relay int) (models.RelayStatus, error) {
	if err := validateRelay(relay); err != nil {
		return models.RelayStatus{}, err
	}
	st, err := s.state.EnsureStatus(ctx, relay)
	if err != nil {
		return models.RelayStatus{}, fmt.Errorf("get status of relay %d: %w", relay, err)
	}
	return st, nil
}

// SetStatus stores the new status and appends the transition to the ON or OFF log.
func (s *RelayService) SetStatus(ctx context.Context, relay, status int) error {
	if err := validateRelay(relay); err != nil {
		return err
	}
	action := models.ActionOff
	switch status {
	case 0:
	case 1:
		action = models.ActionOn
	default:
		return invalid("status", "must be 0 or 1, got %d", status)
	}

	now := time.Now().UTC()
	if err := s.state.SaveStatus(ctx, models.RelayStatus{Relay: relay, Status: status, UpdateTime: now}); err != nil {
		return fmt.Errorf("save status of relay %d: %w", relay, err)
	}
	if err := s.log.Append(ctx, models.RelayEvent{Relay: relay, Action: action, Time: now}); err != nil {
		return fmt.Errorf("log relay %d %s: %w", relay, action, err)
	}
	return nil
}

// SetMode stores the mode and returns the acknowledgement message.
func (s *RelayService) SetMode(ctx context.Context, relay, mode int) (string, error) {
	if err := validateRelay(relay); err != nil {
		return "", err
	}
	if mode != models.ModeAuto && mode != models.ModeManual {
		return "", invalid("mode", "must be 0 (auto) or 1 (manual), got %d", mode)
	}
	if err := s.state.SaveMode(ctx, models.RelayMode{Relay: relay, Mode: mode, UpdateTime: time.Now().UTC()}); err != nil {
		return "", fmt.Errorf("save mode of relay %d: %w", relay, err)
	}
	return fmt.Sprintf("relay%d set to %s", relay, modeName(mode)), nil
}

func (s *RelayService) GetMode(ctx context.Context, relay int) (models.RelayMode, error) {
	if err := validateRelay(relay); err != nil {
		return models.RelayMode{}, err
	}
	m, err := s.state.GetMode(ctx, relay)
	if err != nil {
		return models.RelayMode{}, fmt.Errorf("get mode of relay %d: %w", relay, err)
	}
	if m == nil {
		return models.RelayMode{}, ErrNotFound
	}
	return *m, nil
}

// RelayLog returns the on/off events of one dd-mm-yyyy day, oldest first.
func (s *RelayService) RelayLog(ctx context.Context, date string) ([]models.RelayEvent, error) {
	day, err := time.Parse(report.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil, invalid("date", "%q is not dd-mm-yyyy", date)
	}
	from, to := report.DayBounds(day)

	on, err := s.log.ListRange(ctx, models.ActionOn, from, to)
	if err != nil {
		return nil, fmt.Errorf("list relay on log: %w", err)
	}
	off, err := s.log.ListRange(ctx, models.ActionOff, from, to)
	if err != nil {
		return nil, fmt.Errorf("list relay off log: %w", err)
	}
	return report.MergeRelayEvents(on, off), nil
}

func modeName(mode int) string {
	if mode == models.ModeManual {
		return "MANUAL"
	}
	return "AUTO"
}
