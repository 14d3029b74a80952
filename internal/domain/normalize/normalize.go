// Package normalize converts raw measurement rows into canonical points.
//
// Two deliberate robustness policies live here:
//   - coerce-or-zero: a value that cannot be parsed as a finite number
//     becomes 0 instead of failing the request, so one malformed row
//     cannot abort a multi-athlete aggregation;
//   - placeholder names: empty or markup-only display names become fixed
//     placeholders instead of propagating empty strings.
package normalize

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// Placeholders substituted for empty display names.
const (
	UnknownAthlete = "Unknown"
	NoTeam         = "No Team"
)

// Accepted date layouts, most common first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// Report counts what normalization did to the row set. The caller
// surfaces these as metrics; normalization itself stays pure.
type Report struct {
	CoercedValues  int // values substituted with 0
	DroppedRows    int // rows without a usable metric or date
	SanitizedNames int // names stripped of markup or replaced
}

// Points converts raw rows into canonical measurement points. Rows with
// an unusable metric identifier or date are dropped; everything else is
// repaired per the package policies.
func Points(rows []model.RawRow) ([]model.MeasurementPoint, Report) {
	points := make([]model.MeasurementPoint, 0, len(rows))
	var rep Report

	for _, row := range rows {
		m := metric.Parse(row.Metric)
		if m == "" {
			rep.DroppedRows++
			continue
		}

		day, ok := parseDay(row.Date)
		if !ok {
			rep.DroppedRows++
			continue
		}

		value, coerced := coerceValue(row.Value)
		if coerced {
			rep.CoercedValues++
		}

		name, cleaned := sanitizeName(row.AthleteName, UnknownAthlete)
		if cleaned {
			rep.SanitizedNames++
		}
		team := ""
		if row.TeamName != "" || row.TeamID != "" {
			var teamCleaned bool
			team, teamCleaned = sanitizeName(row.TeamName, NoTeam)
			if teamCleaned {
				rep.SanitizedNames++
			}
		}

		points = append(points, model.MeasurementPoint{
			AthleteID:   strings.TrimSpace(row.AthleteID),
			AthleteName: name,
			TeamName:    team,
			Metric:      m,
			Value:       value,
			Date:        day,
		})
	}

	return points, rep
}

// coerceValue parses a heterogeneous value into a finite float64. The
// second return reports whether the coerce-or-zero fallback fired.
func coerceValue(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0, true
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, true
		}
		f = parsed
	case []byte:
		return parseNumeric(string(t))
	case string:
		return parseNumeric(t)
	default:
		return 0, true
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true
	}
	return f, false
}

func parseNumeric(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true
	}
	return f, false
}

// sanitizeName strips markup from a display name and substitutes the
// placeholder when nothing usable remains. Upstream storage is untrusted,
// so this runs on every row regardless of source.
func sanitizeName(raw, placeholder string) (string, bool) {
	stripped := markupPattern.ReplaceAllString(raw, "")
	stripped = strings.NewReplacer("<", "", ">", "").Replace(stripped)
	stripped = strings.TrimSpace(stripped)
	if stripped == "" {
		return placeholder, true
	}
	return stripped, stripped != raw
}

// parseDay parses an ISO date and truncates it to the calendar day in UTC.
func parseDay(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC().Truncate(24 * time.Hour), true
		}
	}
	return time.Time{}, false
}
