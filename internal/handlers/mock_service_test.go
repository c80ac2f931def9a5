package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockEnv struct {
	recorded  []models.SensorReading
	recordErr error
	latest    []models.SensorReading
	lastLimit int
}

func (m *mockEnv) Record(ctx context.Context, r models.SensorReading) error {
	m.recorded = append(m.recorded, r)
	return m.recordErr
}

func (m *mockEnv) Latest(ctx context.Context, limit int) ([]models.SensorReading, error) {
	m.lastLimit = limit
	return m.latest, nil
}

type mockThresholds struct {
	saved map[string]models.Threshold
	err   error
}

func (m *mockThresholds) SaveThreshold(ctx context.Context, kind string, t models.Threshold) error {
	if m.err != nil {
		return m.err
	}
	if m.saved == nil {
		m.saved = map[string]models.Threshold{}
	}
	m.saved[kind] = t
	return nil
}

func (m *mockThresholds) GetThreshold(ctx context.Context, kind string) (models.Threshold, error) {
	t, ok := m.saved[kind]
	if !ok {
		return models.Threshold{}, service.ErrNotFound
	}
	return t, nil
}

type mockSchedules struct {
	saved   []models.RelaySchedule
	saveErr error
	get     models.RelaySchedule
	getErr  error
}

func (m *mockSchedules) SaveSchedule(ctx context.Context, s models.RelaySchedule) error {
	m.saved = append(m.saved, s)
	return m.saveErr
}

func (m *mockSchedules) GetSchedule(ctx context.Context, relay int) (models.RelaySchedule, error) {
	return m.get, m.getErr
}

type mockRelays struct {
	status    models.RelayStatus
	statusErr error
	setCalls  [][2]int
	setErr    error
	modeMsg   string
	mode      models.RelayMode
	modeErr   error
	lastRelay int
	events    []models.RelayEvent
	logErr    error
	lastDate  string
}

func (m *mockRelays) GetStatus(ctx context.Context, relay int) (models.RelayStatus, error) {
	m.lastRelay = relay
	return m.status, m.statusErr
}

func (m *mockRelays) SetStatus(ctx context.Context, relay, status int) error {
	m.setCalls = append(m.setCalls, [2]int{relay, status})
	return m.setErr
}

func (m *mockRelays) SetMode(ctx context.Context, relay, mode int) (string, error) {
	m.lastRelay = relay
	return m.modeMsg, m.modeErr
}

func (m *mockRelays) GetMode(ctx context.Context, relay int) (models.RelayMode, error) {
	m.lastRelay = relay
	return m.mode, m.modeErr
}

func (m *mockRelays) RelayLog(ctx context.Context, date string) ([]models.RelayEvent, error) {
	m.lastDate = date
	return m.events, m.logErr
}

type alertCall struct {
	kind  string
	value float64
}

type mockAlerts struct {
	calls []alertCall
}

func (m *mockAlerts) RecordOverLimit(ctx context.Context, kind string, value float64) error {
	m.calls = append(m.calls, alertCall{kind: kind, value: value})
	return nil
}

type mockReports struct {
	msg       string
	err       error
	lastEmail string
	lastDate  string
}

func (m *mockReports) Submit(email, date string) (string, error) {
	m.lastEmail = email
	m.lastDate = date
	return m.msg, m.err
}

func (m *mockReports) Wait() {}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var testTime = time.Date(2024, time.January, 10, 8, 5, 0, 0, time.UTC)
