package report

import (
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"home_relay/internal/models"
)

const (
	chartWidth  = 980
	chartHeight = 420
	chartDPI    = 140

	// single-point days get a padded x range so the axis is never empty
	singlePointPadding = 30 * time.Minute
)

func renderChart(path string, day time.Time, readings []models.SensorReading) error {
	xs := make([]time.Time, 0, len(readings))
	temps := make([]float64, 0, len(readings))
	hums := make([]float64, 0, len(readings))
	for _, r := range readings {
		xs = append(xs, r.Time)
		temps = append(temps, r.Temperature)
		hums = append(hums, r.Humidity)
	}

	graph := chart.Chart{
		Title:  "Temperature / Humidity - " + day.Format(DateLayout),
		Width:  chartWidth,
		Height: chartHeight,
		DPI:    chartDPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:           "time",
			ValueFormatter: hourMinuteFormatter,
			Range:          xRange(xs),
		},
		YAxis: chart.YAxis{
			Name:  "value",
			Range: yRange(temps, hums),
		},
		Series: []chart.Series{
			chart.TimeSeries{Name: "Temperature (°C)", XValues: xs, YValues: temps},
			chart.TimeSeries{Name: "Humidity (%)", XValues: xs, YValues: hums},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func hourMinuteFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return time.Unix(0, int64(f)).UTC().Format("15:04")
	}
	return ""
}

// xRange returns nil unless all readings share one instant.
func xRange(xs []time.Time) chart.Range {
	if len(xs) == 0 {
		return nil
	}
	first := xs[0]
	for _, x := range xs[1:] {
		if !x.Equal(first) {
			return nil
		}
	}
	return &chart.ContinuousRange{
		Min: float64(first.Add(-singlePointPadding).UnixNano()),
		Max: float64(first.Add(singlePointPadding).UnixNano()),
	}
}

// yRange returns nil unless every plotted value is the same.
func yRange(series ...[]float64) chart.Range {
	var (
		lo, hi float64
		seen   bool
	)
	for _, values := range series {
		for _, v := range values {
			if !seen {
				lo, hi, seen = v, v, true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if !seen || lo != hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}
