package service

import (
	"context"
	"fmt"
	"math"

	"home_relay/internal/models"
	"home_relay/internal/repository"
)

// Bounds of the limit accepted by Latest.
const (
	DefaultEnvLimit = 50
	MaxEnvLimit     = 1000
)

type EnvService struct {
	repo repository.EnvRepo
}

func NewEnvService(repo repository.EnvRepo) *EnvService {
	return &EnvService{repo: repo}
}

// Record stores one sample; a zero Time is stamped with the server clock.
func (s *EnvService) Record(ctx context.Context, r models.SensorReading) error {
	if math.IsNaN(r.Temperature) || math.IsInf(r.Temperature, 0) {
		return invalid("temperature", "must be a finite number")
	}
	if math.IsNaN(r.Humidity) || math.IsInf(r.Humidity, 0) {
		return invalid("humidity", "must be a finite number")
	}
	if err := s.repo.Append(ctx, r); err != nil {
		return fmt.Errorf("record reading: %w", err)
	}
	return nil
}

// Latest returns up to limit samples, newest first.
// A non-positive limit means DefaultEnvLimit; larger values are capped at MaxEnvLimit.
func (s *EnvService) Latest(ctx context.Context, limit int) ([]models.SensorReading, error) {
	switch {
	case limit <= 0:
		limit = DefaultEnvLimit
	case limit > MaxEnvLimit:
		limit = MaxEnvLimit
	}
	out, err := s.repo.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	return out, nil
}
