package service

import (
	"context"
	"fmt"

	"home_relay/internal/models"
	"home_relay/internal/repository"
)

type ThresholdService struct {
	repo repository.ThresholdRepo
}

func NewThresholdService(repo repository.ThresholdRepo) *ThresholdService {
	return &ThresholdService{repo: repo}
}

func validKind(kind string) error {
	if kind != models.KindTemperature && kind != models.KindHumidity {
		return invalid("kind", "must be %q or %q", models.KindTemperature, models.KindHumidity)
	}
	return nil
}

func (s *ThresholdService) SaveThreshold(ctx context.Context, kind string, t models.Threshold) error {
	if err := validKind(kind); err != nil {
		return err
	}
	if t.MinVal > t.MaxVal {
		return invalid("min_val", "%g is above max_val %g", t.MinVal, t.MaxVal)
	}
	if err := s.repo.Save(ctx, kind, t); err != nil {
		return fmt.Errorf("save %s threshold: %w", kind, err)
	}
	return nil
}

func (s *ThresholdService) GetThreshold(ctx context.Context, kind string) (models.Threshold, error) {
	if err := validKind(kind); err != nil {
		return models.Threshold{}, err
	}
	t, err := s.repo.Get(ctx, kind)
	if err != nil {
		return models.Threshold{}, fmt.Errorf("get %s threshold: %w", kind, err)
	}
	if t == nil {
		return models.Threshold{}, ErrNotFound
	}
	return *t, nil
}
