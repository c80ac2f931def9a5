package service

import (
	"context"
	"testing"
	"time"

	"home_relay/internal/config"
	"home_relay/internal/logger"
)

type fakeSubmitter struct {
	calls []string
	err   error
}

func (f *fakeSubmitter) Submit(email, date string) (string, error) {
	f.calls = append(f.calls, email+" "+date)
	return "ok", f.err
}

func newDaily(t *testing.T, sub submitter, at string) *DailyReportService {
	t.Helper()
	svc, err := NewDailyReportService(sub, config.DailyReportConfig{
		Enabled:   true,
		Recipient: "ops@example.com",
		At:        at,
		Tick:      time.Minute,
	}, logger.Nop())
	if err != nil {
		t.Fatalf("NewDailyReportService: %v", err)
	}
	return svc
}

func TestDailyReport_SubmitsYesterdayOncePerDay(t *testing.T) {
	sub := &fakeSubmitter{}
	svc := newDaily(t, sub, "07:00")
	at := func(d, h, m int) time.Time { return time.Date(2024, time.January, d, h, m, 0, 0, time.UTC) }

	steps := []struct {
		now  time.Time
		want bool
	}{
		{at(11, 6, 59), false},
		{at(11, 7, 0), true},
		{at(11, 7, 1), false},
		{at(11, 23, 59), false},
		{at(12, 0, 30), false},
		{at(12, 7, 30), true},
	}
	for _, st := range steps {
		if got := svc.check(st.now); got != st.want {
			t.Fatalf("check(%s) = %v, want %v", st.now.Format(time.RFC3339), got, st.want)
		}
	}

	want := []string{"ops@example.com 10-01-2024", "ops@example.com 11-01-2024"}
	if len(sub.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", sub.calls, want)
	}
	for i := range want {
		if sub.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, sub.calls[i], want[i])
		}
	}
}

func TestDailyReport_RejectedSubmitIsNotRetriedSameDay(t *testing.T) {
	sub := &fakeSubmitter{err: &BadRequestError{Msg: "invalid email"}}
	svc := newDaily(t, sub, "00:00")
	now := time.Date(2024, time.March, 1, 0, 5, 0, 0, time.UTC)

	svc.check(now)
	svc.check(now.Add(time.Hour))

	if len(sub.calls) != 1 || sub.calls[0] != "ops@example.com 29-02-2024" {
		t.Fatalf("unexpected calls %v", sub.calls)
	}
}

func TestDailyReport_InvalidAt(t *testing.T) {
	_, err := NewDailyReportService(&fakeSubmitter{}, config.DailyReportConfig{Enabled: true, At: "7am"}, nil)
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDailyReport_RunStopsOnCancel(t *testing.T) {
	sub := &fakeSubmitter{}
	svc := newDaily(t, sub, "00:00")
	svc.now = func() time.Time { return time.Date(2024, time.January, 11, 8, 0, 0, 0, time.UTC) }

	ctx, cancel := context.WithCancel(context.Background())
	go svc.Run(ctx, time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-svc.Done():
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
	if len(sub.calls) != 1 {
		t.Fatalf("expected exactly one submission, got %v", sub.calls)
	}
}

func TestDailyReport_DisabledRunReturns(t *testing.T) {
	sub := &fakeSubmitter{}
	svc, err := NewDailyReportService(sub, config.DailyReportConfig{}, nil)
	if err != nil {
		t.Fatalf("NewDailyReportService: %v", err)
	}

	go svc.Run(context.Background(), time.Millisecond)
	select {
	case <-svc.Done():
	case <-time.After(time.Second):
		t.Fatalf("disabled Run should return at once")
	}
	if len(sub.calls) != 0 {
		t.Fatalf("disabled scheduler must not submit")
	}
}

func TestDailyReport_DoneOrdersSubmitsBeforeJobDrain(t *testing.T) {
	jobs, _, _ := newJobService(t, &fakeBuilder{}, &fakeNotifier{})
	svc := newDaily(t, jobs, "00:00")
	svc.now = func() time.Time { return time.Date(2024, time.January, 11, 8, 0, 0, 0, time.UTC) }

	ctx, cancel := context.WithCancel(context.Background())
	go svc.Run(ctx, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	<-svc.Done()
	jobs.Wait()

	select {
	case <-svc.Done():
	default:
		t.Fatalf("Done must stay closed")
	}
	if svc.lastDay != "11-01-2024" {
		t.Fatalf("lastDay=%q", svc.lastDay)
	}
}
