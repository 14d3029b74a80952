package seedgen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// csvHeader matches the flat export schema consumed by the importer.
var csvHeader = []string{
	"measurement_id", "athlete_id", "athlete_name", "team_id", "team_name",
	"gender", "birth_year", "metric", "value", "units", "date", "verified",
}

// WriteCSV streams measurement rows to w in the export schema.
func WriteCSV(w io.Writer, rows []model.RawRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		value := ""
		if v, ok := row.Value.(float64); ok {
			value = strconv.FormatFloat(v, 'f', -1, 64)
		} else if row.Value != nil {
			value = fmt.Sprint(row.Value)
		}
		record := []string{
			row.MeasurementID,
			row.AthleteID,
			row.AthleteName,
			row.TeamID,
			row.TeamName,
			row.Gender,
			strconv.Itoa(row.BirthYear),
			row.Metric,
			value,
			metricSpecs[row.Metric].units,
			row.Date,
			strconv.FormatBool(row.Verified),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes measurement rows to path, creating parent
// directories as needed.
func WriteCSVFile(path string, rows []model.RawRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // path comes from the operator's flag
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return WriteCSV(f, rows)
}
