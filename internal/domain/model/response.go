package model

import (
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
)

// ResponseMeta summarizes what one analytics run consumed and resolved.
type ResponseMeta struct {
	AnalysisID       string    `json:"analysis_id"`
	AthleteCount     int       `json:"athlete_count"`
	MeasurementCount int       `json:"measurement_count"`
	DateRangeStart   time.Time `json:"date_range_start"`
	DateRangeEnd     time.Time `json:"date_range_end"`
	Filters          Filters   `json:"filters"`
}

// AnalyticsResponse is the full engine output. Collection fields are
// always present, possibly empty, so consumers need no existence checks.
type AnalyticsResponse struct {
	Data                 []MeasurementPoint                  `json:"data"`
	Trends               []TrendSeries                       `json:"trends"`
	MultiMetric          []MultiMetricProfile                `json:"multi_metric"`
	Statistics           map[metric.Metric]StatisticalSummary `json:"statistics"`
	MetricsAvailability  map[metric.Metric]int               `json:"metrics_availability"`
	AvailabilityDegraded bool                                `json:"availability_degraded"`
	RecommendedCharts    []string                            `json:"recommended_charts"`
	Meta                 ResponseMeta                        `json:"meta"`
}
