package service

import (
	"context"
	"testing"
	"time"

	"home_relay/internal/models"
)

type fakeEnvRepo struct {
	appended []models.SensorReading
	gotLimit int
	latest   []models.SensorReading
	err      error
}

func (f *fakeEnvRepo) Append(ctx context.Context, r models.SensorReading) error {
	f.appended = append(f.appended, r)
	return f.err
}

func (f *fakeEnvRepo) Latest(ctx context.Context, limit int) ([]models.SensorReading, error) {
	f.gotLimit = limit
	return f.latest, f.err
}

func (f *fakeEnvRepo) ListRange(ctx context.Context, from, to time.Time) ([]models.SensorReading, error) {
	return nil, f.err
}

type fakeThresholdRepo struct {
	saved map[string]models.Threshold
	err   error
}

func (f *fakeThresholdRepo) Save(ctx context.Context, kind string, t models.Threshold) error {
	if f.err != nil {
		return f.err
	}
	if f.saved == nil {
		f.saved = map[string]models.Threshold{}
	}
	f.saved[kind] = t
	return nil
}

func (f *fakeThresholdRepo) Get(ctx context.Context, kind string) (*models.Threshold, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.saved[kind]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

type fakeScheduleRepo struct {
	saved map[int]models.RelaySchedule
}

func (f *fakeScheduleRepo) Save(ctx context.Context, s models.RelaySchedule) error {
	if f.saved == nil {
		f.saved = map[int]models.RelaySchedule{}
	}
	f.saved[s.Relay] = s
	return nil
}

func (f *fakeScheduleRepo) Get(ctx context.Context, relay int) (*models.RelaySchedule, error) {
	s, ok := f.saved[relay]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

type fakeRelayState struct {
	statuses map[int]models.RelayStatus
	modes    map[int]models.RelayMode
	ensured  []int
	err      error
}

func newFakeRelayState() *fakeRelayState {
	return &fakeRelayState{statuses: map[int]models.RelayStatus{}, modes: map[int]models.RelayMode{}}
}

func (f *fakeRelayState) SaveStatus(ctx context.Context, s models.RelayStatus) error {
	if f.err != nil {
		return f.err
	}
	f.statuses[s.Relay] = s
	return nil
}

func (f *fakeRelayState) GetStatus(ctx context.Context, relay int) (*models.RelayStatus, error) {
	s, ok := f.statuses[relay]
	if !ok {
		return nil, f.err
	}
	return &s, f.err
}

func (f *fakeRelayState) EnsureStatus(ctx context.Context, relay int) (models.RelayStatus, error) {
	if f.err != nil {
		return models.RelayStatus{}, f.err
	}
	f.ensured = append(f.ensured, relay)
	if _, ok := f.statuses[relay]; !ok {
		f.statuses[relay] = models.RelayStatus{Relay: relay, UpdateTime: time.Now().UTC()}
	}
	return f.statuses[relay], nil
}

func (f *fakeRelayState) SaveMode(ctx context.Context, m models.RelayMode) error {
	if f.err != nil {
		return f.err
	}
	f.modes[m.Relay] = m
	return nil
}

func (f *fakeRelayState) GetMode(ctx context.Context, relay int) (*models.RelayMode, error) {
	m, ok := f.modes[relay]
	if !ok {
		return nil, f.err
	}
	return &m, f.err
}

type fakeRelayLog struct {
	events []models.RelayEvent
	err    error
}

func (f *fakeRelayLog) Append(ctx context.Context, e models.RelayEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeRelayLog) ListRange(ctx context.Context, action string, from, to time.Time) ([]models.RelayEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.RelayEvent
	for _, e := range f.events {
		if e.Action == action && !e.Time.Before(from) && !e.Time.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

type overLimitCall struct {
	kind string
	rec  models.OverLimitRecord
}

type fakeOverLimitRepo struct {
	calls []overLimitCall
}

func (f *fakeOverLimitRepo) Append(ctx context.Context, kind string, r models.OverLimitRecord) error {
	f.calls = append(f.calls, overLimitCall{kind: kind, rec: r})
	return nil
}

func assertWithinTimeWindow(t *testing.T, ts, start, end time.Time) {
	t.Helper()
	if ts.Before(start) || ts.After(end) {
		t.Fatalf("time %v not within window [%v, %v]", ts, start, end)
	}
}
