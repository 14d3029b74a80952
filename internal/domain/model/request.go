package model

import (
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
)

// AnalysisType selects the comparison mode of one analytics request.
type AnalysisType string

// Analysis types.
const (
	AnalysisIndividual AnalysisType = "individual"
	AnalysisIntraGroup AnalysisType = "intra_group"
	AnalysisInterGroup AnalysisType = "inter_group"
)

// TimeframeType selects how measurements are collapsed over time.
type TimeframeType string

// Timeframe types. Anything else passes points through unfiltered.
const (
	TimeframeBest   TimeframeType = "best"
	TimeframeTrends TimeframeType = "trends"
)

// MetricSelection names the primary metric and any additional ones.
type MetricSelection struct {
	Primary    metric.Metric   `json:"primary"`
	Additional []metric.Metric `json:"additional"`
}

// All returns the requested metrics in order, primary first, with empty
// and duplicate identifiers removed.
func (s MetricSelection) All() []metric.Metric {
	out := make([]metric.Metric, 0, 1+len(s.Additional))
	seen := make(map[metric.Metric]bool, 1+len(s.Additional))
	for _, m := range append([]metric.Metric{s.Primary}, s.Additional...) {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// Timeframe bounds the analysis window. Explicit start/end win over the
// named period.
type Timeframe struct {
	Type   TimeframeType `json:"type"`
	Period string        `json:"period,omitempty"`
	Start  *time.Time    `json:"start,omitempty"`
	End    *time.Time    `json:"end,omitempty"`
}

// Filters narrow the row set resolved by the data layer. The engine never
// filters rows itself.
type Filters struct {
	OrganizationID string   `json:"organization_id"`
	Teams          []string `json:"teams,omitempty"`
	Genders        []string `json:"genders,omitempty"`
	BirthYearFrom  int      `json:"birth_year_from,omitempty"`
	BirthYearTo    int      `json:"birth_year_to,omitempty"`
	AthleteIDs     []string `json:"athlete_ids,omitempty"`
	VerifiedOnly   bool     `json:"verified_only,omitempty"`
}

// AnalysisRequest is the validated input of one analytics run.
type AnalysisRequest struct {
	AnalysisType AnalysisType    `json:"analysis_type"`
	AthleteID    string          `json:"athlete_id,omitempty"`
	Metrics      MetricSelection `json:"metrics"`
	Timeframe    Timeframe       `json:"timeframe"`
	Filters      Filters         `json:"filters"`
}
