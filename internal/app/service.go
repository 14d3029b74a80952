// Package app provides the analytics orchestrator that drives the engine
// pipeline for one request: validate, resolve rows, normalize, filter,
// aggregate, recommend, assemble.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/perfdeck/perfdeck/internal/adapters/repository"
	"github.com/perfdeck/perfdeck/internal/domain/bestvalue"
	"github.com/perfdeck/perfdeck/internal/domain/charts"
	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
	"github.com/perfdeck/perfdeck/internal/domain/normalize"
	"github.com/perfdeck/perfdeck/internal/domain/profile"
	"github.com/perfdeck/perfdeck/internal/domain/stats"
	"github.com/perfdeck/perfdeck/internal/domain/trend"
	"github.com/perfdeck/perfdeck/pkg/logger"
	"github.com/perfdeck/perfdeck/pkg/metrics"
)

// Default orchestration configuration.
const (
	defaultPeriod = 90 * 24 * time.Hour
	hoursPerDay   = 24
)

// Service orchestrates the analytics pipeline. Its fields are set once at
// construction and never mutated afterwards, so a single instance serves
// any number of concurrent requests.
type Service struct {
	source        repository.Source
	directions    *metric.DirectionRegistry
	chartTable    *charts.Table
	defaultPeriod time.Duration
	logger        logger.Logger
	now           func() time.Time

	// Running counters for the stats endpoint.
	requestsServed  atomic.Int64
	rowsProcessed   atomic.Int64
	requestsInvalid atomic.Int64
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		directions:    metric.NewDirectionRegistry(),
		chartTable:    charts.NewTable(),
		defaultPeriod: defaultPeriod,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) log() logger.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logger.Get()
}

// Analyze runs one analytics request end to end. Validation failures
// return a *ValidationError; data layer failures propagate with operation
// context only. A failure of the auxiliary availability sub-query never
// fails the request.
func (s *Service) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalyticsResponse, error) {
	started := s.now()

	if err := s.validate(req); err != nil {
		s.requestsInvalid.Add(1)
		metrics.RecordValidationFailure()
		return nil, err
	}
	if s.source == nil {
		return nil, ErrNoSource
	}

	requested := req.Metrics.All()
	tf := req.Timeframe.Type
	metrics.RecordAnalyticsRequest(string(req.AnalysisType), string(tf))

	windowStart, windowEnd := s.resolveWindow(req.Timeframe)
	q := buildQuery(req, requested, windowStart, windowEnd)

	rows, err := s.source.Rows(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("resolve measurement rows: %w", err)
	}

	points, rep := normalize.Points(rows)
	metrics.RecordRowsNormalized(len(points))
	metrics.RecordCoercionFallbacks(rep.CoercedValues)
	metrics.RecordRowsDropped(rep.DroppedRows)
	s.rowsProcessed.Add(int64(len(points)))

	filtered := bestvalue.Filter(points, tf, s.directions)

	resp := &model.AnalyticsResponse{
		Data:                filtered,
		Trends:              []model.TrendSeries{},
		MultiMetric:         []model.MultiMetricProfile{},
		Statistics:          make(map[metric.Metric]model.StatisticalSummary, len(requested)),
		MetricsAvailability: make(map[metric.Metric]int, len(requested)),
	}

	for _, m := range requested {
		var values []float64
		for _, p := range filtered {
			if p.Metric == m {
				values = append(values, p.Value)
			}
		}
		resp.Statistics[m] = stats.Summarize(values)
	}

	if tf == model.TimeframeTrends {
		roster := rosterOf(points, req)
		for _, m := range requested {
			resp.Trends = append(resp.Trends, trend.Build(filtered, m, roster, s.directions)...)
		}
	}

	if len(requested) >= 2 {
		resp.MultiMetric = profile.Build(points, requested, s.directions)
	}

	resp.RecommendedCharts = charts.Identifiers(
		s.chartTable.Recommend(req.AnalysisType, len(requested), tf),
	)

	s.fillAvailability(ctx, resp, q, requested)

	resp.Meta = s.buildMeta(req, filtered, points, windowStart, windowEnd)

	elapsed := s.now().Sub(started)
	metrics.RecordAnalyticsDuration(float64(elapsed.Milliseconds()))
	s.requestsServed.Add(1)
	s.log().Debug(ctx, "analysis complete",
		logger.String("analysisType", string(req.AnalysisType)),
		logger.String("timeframe", string(tf)),
		logger.Int("rows", len(rows)),
		logger.Int("points", len(filtered)),
		logger.Duration("elapsed", elapsed),
	)

	return resp, nil
}

// validate checks the request and enumerates every violated constraint.
func (s *Service) validate(req model.AnalysisRequest) error {
	var violations []string
	if strings.TrimSpace(req.Filters.OrganizationID) == "" {
		violations = append(violations, "filters.organization_id is required")
	}
	if req.AnalysisType == model.AnalysisIndividual && strings.TrimSpace(req.AthleteID) == "" {
		violations = append(violations, "athlete_id is required for individual analysis")
	}
	if len(req.Metrics.All()) == 0 {
		violations = append(violations, "metrics.primary is required")
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// resolveWindow turns a timeframe into concrete bounds. Explicit dates
// win; otherwise the named period counts back from now; "all" leaves the
// start unbounded.
func (s *Service) resolveWindow(tf model.Timeframe) (start, end time.Time) {
	end = s.now().UTC().Truncate(hoursPerDay * time.Hour)
	if tf.End != nil {
		end = tf.End.UTC().Truncate(hoursPerDay * time.Hour)
	}

	if tf.Start != nil {
		return tf.Start.UTC().Truncate(hoursPerDay * time.Hour), end
	}

	period, unbounded := parsePeriod(tf.Period)
	if unbounded {
		return time.Time{}, end
	}
	if period == 0 {
		period = s.defaultPeriod
	}
	return end.Add(-period), end
}

// parsePeriod reads periods like "30d", "12w", "6m", "1y". "all" means
// an unbounded window. Unknown values fall back to the default period.
func parsePeriod(raw string) (period time.Duration, unbounded bool) {
	p := strings.ToLower(strings.TrimSpace(raw))
	if p == "" {
		return 0, false
	}
	if p == "all" {
		return 0, true
	}

	unit := p[len(p)-1]
	n, err := strconv.Atoi(p[:len(p)-1])
	if err != nil || n <= 0 {
		return 0, false
	}

	day := hoursPerDay * time.Hour
	switch unit {
	case 'd':
		return time.Duration(n) * day, false
	case 'w':
		return time.Duration(n) * 7 * day, false
	case 'm':
		return time.Duration(n) * 30 * day, false
	case 'y':
		return time.Duration(n) * 365 * day, false
	default:
		return 0, false
	}
}

// buildQuery translates request filters into a repository query. For
// individual analysis the athlete filter narrows to the subject.
func buildQuery(req model.AnalysisRequest, requested []metric.Metric, start, end time.Time) repository.Query {
	ms := make([]string, len(requested))
	for i, m := range requested {
		ms[i] = string(m)
	}

	athleteIDs := req.Filters.AthleteIDs
	if req.AnalysisType == model.AnalysisIndividual {
		athleteIDs = []string{req.AthleteID}
	}

	return repository.Query{
		OrganizationID: req.Filters.OrganizationID,
		Metrics:        ms,
		Teams:          req.Filters.Teams,
		Genders:        req.Filters.Genders,
		BirthYearFrom:  req.Filters.BirthYearFrom,
		BirthYearTo:    req.Filters.BirthYearTo,
		AthleteIDs:     athleteIDs,
		VerifiedOnly:   req.Filters.VerifiedOnly,
		Start:          start,
		End:            end,
	}
}

// rosterOf lists distinct athletes in first-encounter order. The request
// subject is included even without points, so an individual analysis
// always yields a series per requested metric.
func rosterOf(points []model.MeasurementPoint, req model.AnalysisRequest) []trend.Athlete {
	var roster []trend.Athlete
	seen := make(map[string]bool)
	for _, p := range points {
		if seen[p.AthleteID] {
			continue
		}
		seen[p.AthleteID] = true
		roster = append(roster, trend.Athlete{ID: p.AthleteID, Name: p.AthleteName})
	}
	if req.AnalysisType == model.AnalysisIndividual && !seen[req.AthleteID] {
		roster = append(roster, trend.Athlete{ID: req.AthleteID, Name: normalize.UnknownAthlete})
	}
	return roster
}

// fillAvailability runs the auxiliary availability sub-query. Failures
// degrade to all-zero counts plus an error flag instead of failing the
// whole request; availability is a UI hint, not core output.
func (s *Service) fillAvailability(ctx context.Context, resp *model.AnalyticsResponse, q repository.Query, requested []metric.Metric) {
	counts, err := s.source.AvailabilityCounts(ctx, q)
	if err != nil {
		s.log().Warn(ctx, "availability counts degraded", logger.Error(err))
		metrics.RecordAvailabilityDegraded()
		resp.AvailabilityDegraded = true
		for _, m := range requested {
			resp.MetricsAvailability[m] = 0
		}
		return
	}
	for _, m := range requested {
		resp.MetricsAvailability[m] = counts[string(m)]
	}
}

// buildMeta assembles the response envelope metadata.
func (s *Service) buildMeta(req model.AnalysisRequest, filtered, points []model.MeasurementPoint, start, end time.Time) model.ResponseMeta {
	athletes := make(map[string]bool)
	for _, p := range filtered {
		athletes[p.AthleteID] = true
	}

	return model.ResponseMeta{
		AnalysisID:       uuid.NewString(),
		AthleteCount:     len(athletes),
		MeasurementCount: len(points),
		DateRangeStart:   start,
		DateRangeEnd:     end,
		Filters:          req.Filters,
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"requestsServed":  s.requestsServed.Load(),
		"requestsInvalid": s.requestsInvalid.Load(),
		"rowsProcessed":   s.rowsProcessed.Load(),
	}
}
