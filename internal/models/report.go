package models

import "time"

// ReportArtifact lists the files produced for one daily report.
// It only lives for the duration of a report job.
type ReportArtifact struct {
	Date            time.Time
	SpreadsheetPath string
	ChartPath       string
}

// Paths returns the artifact files that were set.
func (a ReportArtifact) Paths() []string {
	var out []string
	for _, p := range []string{a.SpreadsheetPath, a.ChartPath} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
