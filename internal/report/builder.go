package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/repository"
)

// DateLayout is the dd-mm-yyyy form used in requests, titles and file names.
const DateLayout = "02-01-2006"

const chartDateLayout = "02012006"

// Builder assembles the daily report from the sensor log and both relay logs.
type Builder struct {
	env    repository.EnvRepo
	relays repository.RelayLogRepo
}

func NewBuilder(env repository.EnvRepo, relays repository.RelayLogRepo) *Builder {
	return &Builder{env: env, relays: relays}
}

// DayBounds returns the first and last instant of day at microsecond precision.
// Only the calendar date of day is used; no timezone conversion happens.
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24*time.Hour - time.Microsecond)
}

// SpreadsheetName and ChartName depend only on the date, so a rebuild overwrites.
func SpreadsheetName(day time.Time) string {
	return "report_" + day.Format(DateLayout) + ".xlsx"
}

func ChartName(day time.Time) string {
	return "chart_" + day.Format(chartDateLayout) + ".png"
}

// Build writes the workbook and chart for day into dir.
// It fails with *NoDataError, before touching dir, when the day has no sensor reading.
func (b *Builder) Build(ctx context.Context, day time.Time, dir string) (models.ReportArtifact, error) {
	from, to := DayBounds(day)
	artifact := models.ReportArtifact{Date: from}

	readings, err := b.env.ListRange(ctx, from, to)
	if err != nil {
		return artifact, fmt.Errorf("load sensor readings: %w", err)
	}
	if len(readings) == 0 {
		return artifact, &NoDataError{Date: from}
	}

	onEvents, err := b.relays.ListRange(ctx, models.ActionOn, from, to)
	if err != nil {
		return artifact, fmt.Errorf("load relay on log: %w", err)
	}
	offEvents, err := b.relays.ListRange(ctx, models.ActionOff, from, to)
	if err != nil {
		return artifact, fmt.Errorf("load relay off log: %w", err)
	}
	events := MergeRelayEvents(onEvents, offEvents)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return artifact, fmt.Errorf("create report dir: %w", err)
	}

	xlsxPath := filepath.Join(dir, SpreadsheetName(from))
	if err := writeWorkbook(xlsxPath, readings, events); err != nil {
		return artifact, errors.Join(fmt.Errorf("write workbook: %w", err), removeIfExists(xlsxPath))
	}

	pngPath := filepath.Join(dir, ChartName(from))
	if err := renderChart(pngPath, from, readings); err != nil {
		return artifact, errors.Join(fmt.Errorf("render chart: %w", err), removeIfExists(xlsxPath), removeIfExists(pngPath))
	}

	artifact.SpreadsheetPath = xlsxPath
	artifact.ChartPath = pngPath
	return artifact, nil
}

// MergeRelayEvents returns the union of both logs ordered by time.
// Events at the same instant keep ON before OFF.
func MergeRelayEvents(on, off []models.RelayEvent) []models.RelayEvent {
	out := make([]models.RelayEvent, 0, len(on)+len(off))
	out = append(out, on...)
	out = append(out, off...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
