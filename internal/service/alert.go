package service

import (
	"context"
	"fmt"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/repository"
)

type AlertService struct {
	repo repository.OverLimitRepo
}

func NewAlertService(repo repository.OverLimitRepo) *AlertService {
	return &AlertService{repo: repo}
}

// RecordOverLimit appends value to the over-limit log of kind, stamped now.
func (s *AlertService) RecordOverLimit(ctx context.Context, kind string, value float64) error {
	if err := validKind(kind); err != nil {
		return err
	}
	rec := models.OverLimitRecord{Time: time.Now().UTC(), Value: value}
	if err := s.repo.Append(ctx, kind, rec); err != nil {
		return fmt.Errorf("record over-%s: %w", kind, err)
	}
	return nil
}
