// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/perfdeck/perfdeck/internal/app"
	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// Accepted wire date layouts.
var requestDateLayouts = []string{"2006-01-02", time.RFC3339}

// AnalyticsHandler handles analytics requests.
type AnalyticsHandler struct {
	deps Dependencies
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps Dependencies) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

// analyticsRequest mirrors the wire schema for POST /analytics. Dates are
// plain calendar strings; metric identifiers are free-form and normalized
// at the boundary.
type analyticsRequest struct {
	AnalysisType string `json:"analysis_type"`
	AthleteID    string `json:"athlete_id"`
	Metrics      struct {
		Primary    string   `json:"primary"`
		Additional []string `json:"additional"`
	} `json:"metrics"`
	Timeframe struct {
		Type   string `json:"type"`
		Period string `json:"period"`
		Start  string `json:"start"`
		End    string `json:"end"`
	} `json:"timeframe"`
	Filters struct {
		OrganizationID string   `json:"organization_id"`
		Teams          []string `json:"teams"`
		Genders        []string `json:"genders"`
		BirthYearFrom  int      `json:"birth_year_from"`
		BirthYearTo    int      `json:"birth_year_to"`
		AthleteIDs     []string `json:"athlete_ids"`
		VerifiedOnly   bool     `json:"verified_only"`
	} `json:"filters"`
}

// toModel converts the wire request into the domain request. Only dates
// can fail here; everything else is validated by the orchestrator.
func (r analyticsRequest) toModel() (model.AnalysisRequest, error) {
	additional := make([]metric.Metric, 0, len(r.Metrics.Additional))
	for _, raw := range r.Metrics.Additional {
		additional = append(additional, metric.Parse(raw))
	}

	req := model.AnalysisRequest{
		AnalysisType: model.AnalysisType(strings.ToLower(strings.TrimSpace(r.AnalysisType))),
		AthleteID:    strings.TrimSpace(r.AthleteID),
		Metrics: model.MetricSelection{
			Primary:    metric.Parse(r.Metrics.Primary),
			Additional: additional,
		},
		Timeframe: model.Timeframe{
			Type:   model.TimeframeType(strings.ToLower(strings.TrimSpace(r.Timeframe.Type))),
			Period: r.Timeframe.Period,
		},
		Filters: model.Filters{
			OrganizationID: strings.TrimSpace(r.Filters.OrganizationID),
			Teams:          r.Filters.Teams,
			Genders:        r.Filters.Genders,
			BirthYearFrom:  r.Filters.BirthYearFrom,
			BirthYearTo:    r.Filters.BirthYearTo,
			AthleteIDs:     r.Filters.AthleteIDs,
			VerifiedOnly:   r.Filters.VerifiedOnly,
		},
	}

	start, err := parseRequestDate(r.Timeframe.Start)
	if err != nil {
		return model.AnalysisRequest{}, fmt.Errorf("invalid timeframe.start: %w", err)
	}
	end, err := parseRequestDate(r.Timeframe.End)
	if err != nil {
		return model.AnalysisRequest{}, fmt.Errorf("invalid timeframe.end: %w", err)
	}
	req.Timeframe.Start = start
	req.Timeframe.End = end

	return req, nil
}

func parseRequestDate(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	for _, layout := range requestDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable date %q", s)
}

// HandleAnalyze handles POST /analytics requests.
func (h *AnalyticsHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var wire analyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	req, err := wire.toModel()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	resp, err := h.deps.Analyze(r.Context(), req)
	if err != nil {
		if ve, ok := app.AsValidation(err); ok {
			writeValidationError(w, ve.Violations)
			return
		}
		writeError(w, http.StatusBadGateway, "upstream_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
