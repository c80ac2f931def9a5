package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"home_relay/internal/models"
)

func TestEnvService_Record(t *testing.T) {
	repo := &fakeEnvRepo{}
	svc := NewEnvService(repo)

	if err := svc.Record(context.Background(), models.SensorReading{Temperature: 25.5, Humidity: 61}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(repo.appended) != 1 || repo.appended[0].Temperature != 25.5 {
		t.Fatalf("unexpected appends: %+v", repo.appended)
	}

	err := svc.Record(context.Background(), models.SensorReading{Temperature: math.NaN()})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "temperature" {
		t.Fatalf("expected temperature ValidationError, got %v", err)
	}
	if len(repo.appended) != 1 {
		t.Fatalf("invalid reading must not be stored")
	}
}

func TestEnvService_LatestClampsLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"default on zero", 0, DefaultEnvLimit},
		{"default on negative", -3, DefaultEnvLimit},
		{"passthrough", 10, 10},
		{"capped", MaxEnvLimit + 1, MaxEnvLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeEnvRepo{}
			if _, err := NewEnvService(repo).Latest(context.Background(), tc.limit); err != nil {
				t.Fatalf("Latest: %v", err)
			}
			if repo.gotLimit != tc.want {
				t.Fatalf("limit = %d, want %d", repo.gotLimit, tc.want)
			}
		})
	}
}

func TestEnvService_LatestWrapsRepoError(t *testing.T) {
	boom := errors.New("db down")
	_, err := NewEnvService(&fakeEnvRepo{err: boom}).Latest(context.Background(), 5)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestThresholdService(t *testing.T) {
	repo := &fakeThresholdRepo{}
	svc := NewThresholdService(repo)
	ctx := context.Background()

	if _, err := svc.GetThreshold(ctx, models.KindTemperature); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.SaveThreshold(ctx, models.KindTemperature, models.Threshold{MinVal: 18, MaxVal: 30}); err != nil {
		t.Fatalf("SaveThreshold: %v", err)
	}
	got, err := svc.GetThreshold(ctx, models.KindTemperature)
	if err != nil {
		t.Fatalf("GetThreshold: %v", err)
	}
	if got.MinVal != 18 || got.MaxVal != 30 {
		t.Fatalf("got %+v", got)
	}

	var ve *ValidationError
	if err := svc.SaveThreshold(ctx, models.KindHumidity, models.Threshold{MinVal: 80, MaxVal: 40}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for min > max, got %v", err)
	}
	if err := svc.SaveThreshold(ctx, "pressure", models.Threshold{}); !errors.As(err, &ve) || ve.Field != "kind" {
		t.Fatalf("expected kind ValidationError, got %v", err)
	}
}

func TestScheduleService_SaveValidates(t *testing.T) {
	cases := []struct {
		name  string
		in    models.RelaySchedule
		field string
	}{
		{"relay out of range", models.RelaySchedule{Relay: 5, OnTime: "08:00:00", DurationSec: 60}, "relay_id"},
		{"bad time", models.RelaySchedule{Relay: 1, OnTime: "25:00:00", DurationSec: 60}, "on_time"},
		{"missing seconds", models.RelaySchedule{Relay: 1, OnTime: "08:00", DurationSec: 60}, "on_time"},
		{"zero duration", models.RelaySchedule{Relay: 1, OnTime: "08:00:00", DurationSec: 0}, "duration_s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeScheduleRepo{}
			err := NewScheduleService(repo).SaveSchedule(context.Background(), tc.in)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected %s ValidationError, got %v", tc.field, err)
			}
			if len(repo.saved) != 0 {
				t.Fatalf("invalid schedule must not be stored")
			}
		})
	}
}

func TestScheduleService_RoundTrip(t *testing.T) {
	svc := NewScheduleService(&fakeScheduleRepo{})
	ctx := context.Background()

	if _, err := svc.GetSchedule(ctx, 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.SaveSchedule(ctx, models.RelaySchedule{Relay: 3, OnTime: "06:30:00", DurationSec: 900}); err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}
	got, err := svc.GetSchedule(ctx, 3)
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if got.OnTime != "06:30:00" || got.DurationSec != 900 {
		t.Fatalf("got %+v", got)
	}
}

func TestAlertService_RecordOverLimit(t *testing.T) {
	repo := &fakeOverLimitRepo{}
	svc := NewAlertService(repo)

	start := time.Now().UTC()
	if err := svc.RecordOverLimit(context.Background(), models.KindHumidity, 91.5); err != nil {
		t.Fatalf("RecordOverLimit: %v", err)
	}
	end := time.Now().UTC()

	if len(repo.calls) != 1 {
		t.Fatalf("expected one append, got %d", len(repo.calls))
	}
	call := repo.calls[0]
	if call.kind != models.KindHumidity || call.rec.Value != 91.5 {
		t.Fatalf("unexpected call %+v", call)
	}
	assertWithinTimeWindow(t, call.rec.Time, start, end)

	var ve *ValidationError
	if err := svc.RecordOverLimit(context.Background(), "smoke", 1); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
