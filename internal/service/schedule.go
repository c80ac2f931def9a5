package service

import (
	"context"
	"fmt"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/repository"
)

// ScheduleTimeLayout is the HH:MM:SS form of RelaySchedule.OnTime.
const ScheduleTimeLayout = "15:04:05"

type ScheduleService struct {
	repo repository.ScheduleRepo
}

func NewScheduleService(repo repository.ScheduleRepo) *ScheduleService {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) SaveSchedule(ctx context.Context, sc models.RelaySchedule) error {
	if err := validateRelay(sc.Relay); err != nil {
		return err
	}
	on, err := time.Parse(ScheduleTimeLayout, sc.OnTime)
	if err != nil {
		return invalid("on_time", "%q is not HH:MM:SS", sc.OnTime)
	}
	if sc.DurationSec <= 0 {
		return invalid("duration_s", "must be positive, got %d", sc.DurationSec)
	}
	// store the canonical zero-padded form
	sc.OnTime = on.Format(ScheduleTimeLayout)

	if err := s.repo.Save(ctx, sc); err != nil {
		return fmt.Errorf("save schedule of relay %d: %w", sc.Relay, err)
	}
	return nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, relay int) (models.RelaySchedule, error) {
	if err := validateRelay(relay); err != nil {
		return models.RelaySchedule{}, err
	}
	sc, err := s.repo.Get(ctx, relay)
	if err != nil {
		return models.RelaySchedule{}, fmt.Errorf("get schedule of relay %d: %w", relay, err)
	}
	if sc == nil {
		return models.RelaySchedule{}, ErrNotFound
	}
	return *sc, nil
}
