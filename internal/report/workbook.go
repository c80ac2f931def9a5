package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"home_relay/internal/models"
)

// Sheet names of the report workbook.
const (
	EnvSheet   = "Env24h"
	RelaySheet = "RelayLog"
)

var (
	envHeader   = []any{"timestamp", "temperature", "humidity"}
	relayHeader = []any{"relay", "action", "time"}
)

const defaultSheet = "Sheet1"

func writeWorkbook(path string, readings []models.SensorReading, events []models.RelayEvent) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, EnvSheet); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}
	if _, err := f.NewSheet(RelaySheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", RelaySheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	envRows := make([][]any, 0, len(readings))
	for _, r := range readings {
		envRows = append(envRows, []any{r.Time, r.Temperature, r.Humidity})
	}
	if err := writeSheet(f, EnvSheet, envHeader, envRows, headerStyle); err != nil {
		return err
	}

	relayRows := make([][]any, 0, len(events))
	for _, e := range events {
		relayRows = append(relayRows, []any{e.Relay, e.Action, e.Time})
	}
	if err := writeSheet(f, RelaySheet, relayHeader, relayRows, headerStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// writeSheet writes a header row followed by rows, starting at A1.
func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 20)
}
