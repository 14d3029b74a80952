// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
)

// MeasurementPoint is the canonical form of one measurement. Value is
// always finite; the normalizer coerces or drops anything else before a
// point is built.
type MeasurementPoint struct {
	AthleteID   string        `json:"athlete_id"`
	AthleteName string        `json:"athlete_name"`
	TeamName    string        `json:"team_name,omitempty"`
	Metric      metric.Metric `json:"metric"`
	Value       float64       `json:"value"`
	Date        time.Time     `json:"date"`
}

// Day returns the point's date truncated to the calendar day in UTC.
func (p MeasurementPoint) Day() time.Time {
	return p.Date.UTC().Truncate(24 * time.Hour)
}

// Percentiles is the fixed ordered percentile set of a summary.
type Percentiles struct {
	P5  float64 `json:"p5"`
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
	P95 float64 `json:"p95"`
}

// StatisticalSummary describes one metric's sample. A zero count implies
// every other field is exactly zero, never NaN.
type StatisticalSummary struct {
	Count       int         `json:"count"`
	Mean        float64     `json:"mean"`
	Median      float64     `json:"median"`
	Min         float64     `json:"min"`
	Max         float64     `json:"max"`
	Std         float64     `json:"std"`
	Percentiles Percentiles `json:"percentiles"`
}

// TrendPoint is one entry of an athlete's chronological series. Group
// baselines are computed across all athletes sharing the same date.
type TrendPoint struct {
	Date           time.Time `json:"date"`
	Value          float64   `json:"value"`
	IsPersonalBest bool      `json:"is_personal_best"`
	GroupAverage   float64   `json:"group_average"`
	GroupMedian    float64   `json:"group_median"`
}

// TrendSeries holds one athlete's ordered points for one metric. A series
// with zero qualifying points is present with an empty point list, never
// omitted.
type TrendSeries struct {
	AthleteID   string        `json:"athlete_id"`
	AthleteName string        `json:"athlete_name"`
	Metric      metric.Metric `json:"metric"`
	Points      []TrendPoint  `json:"points"`
}

// MultiMetricProfile carries one athlete's best value and percentile rank
// per requested metric, for radar-style comparison. Only athletes holding
// a value for every requested metric are profiled.
type MultiMetricProfile struct {
	AthleteID       string                    `json:"athlete_id"`
	AthleteName     string                    `json:"athlete_name"`
	Metrics         map[metric.Metric]float64 `json:"metrics"`
	PercentileRanks map[metric.Metric]float64 `json:"percentile_ranks"`
}
