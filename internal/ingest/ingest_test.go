package ingest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"home_relay/internal/config"
	"home_relay/internal/logger"
	"home_relay/internal/models"
)

func TestDecodeReading(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    models.SensorReading
		wantErr string
	}{
		{name: "english keys", payload: `{"temperature": 25.5, "humidity": 61}`, want: models.SensorReading{Temperature: 25.5, Humidity: 61}},
		{name: "device keys", payload: `{"nhiet_do": 26, "do_am": 60.5}`, want: models.SensorReading{Temperature: 26, Humidity: 60.5}},
		{name: "numeric strings", payload: `{"temperature": " 20.25", "do_am": "55"}`, want: models.SensorReading{Temperature: 20.25, Humidity: 55}},
		{name: "missing humidity", payload: `{"temperature": 20}`, wantErr: "missing field humidity or do_am"},
		{name: "not a number", payload: `{"temperature": true, "humidity": 1}`, wantErr: "field temperature"},
		{name: "bad json", payload: `{`, wantErr: "decode reading"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeReading([]byte(tc.payload))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeReading: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

type fakeRecorder struct {
	got []models.SensorReading
	err error
}

func (f *fakeRecorder) Record(ctx context.Context, r models.SensorReading) error {
	f.got = append(f.got, r)
	return f.err
}

func newTestSubscriber(rec Recorder, buf *bytes.Buffer) *Subscriber {
	log := logger.NewWithWriter(logger.DebugLevel, logger.JSONFormat, buf)
	return NewSubscriber(config.MQTTConfig{Broker: "tcp://127.0.0.1:1883", ClientID: "test", Topic: "home/env"}, rec, log)
}

func TestSubscriber_HandleRecordsReading(t *testing.T) {
	rec := &fakeRecorder{}
	var buf bytes.Buffer
	s := newTestSubscriber(rec, &buf)

	s.handle("home/env", []byte(`{"nhiet_do": 24, "do_am": 58}`))

	if len(rec.got) != 1 || rec.got[0].Temperature != 24 || rec.got[0].Humidity != 58 {
		t.Fatalf("unexpected records %+v", rec.got)
	}
	if !strings.Contains(buf.String(), "mqtt_reading_recorded") {
		t.Fatalf("expected debug log, got %s", buf.String())
	}
}

func TestSubscriber_HandleDropsBadPayload(t *testing.T) {
	rec := &fakeRecorder{}
	var buf bytes.Buffer
	s := newTestSubscriber(rec, &buf)

	s.handle("home/env", []byte(`not json`))

	if len(rec.got) != 0 {
		t.Fatalf("bad payload must not be recorded")
	}
	if !strings.Contains(buf.String(), "mqtt_bad_payload") {
		t.Fatalf("expected warning, got %s", buf.String())
	}
}

func TestSubscriber_HandleLogsRecordError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db locked")}
	var buf bytes.Buffer
	s := newTestSubscriber(rec, &buf)

	s.handle("home/env", []byte(`{"temperature": 1, "humidity": 2}`))

	if !strings.Contains(buf.String(), "mqtt_record_failed") {
		t.Fatalf("expected error log, got %s", buf.String())
	}
}
