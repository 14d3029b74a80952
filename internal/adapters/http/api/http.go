// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/perfdeck/perfdeck/internal/domain/charts"
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyze runs one analytics request end to end.
	Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalyticsResponse, error)
}

// Server wires HTTP routes for the analytics API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	analyticsHandler *AnalyticsHandler
	chartsHandler    *ChartsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, table *charts.Table) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		analyticsHandler: NewAnalyticsHandler(deps),
		chartsHandler:    NewChartsHandler(table),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/analytics", MetricsMiddleware(s.analyticsHandler.HandleAnalyze, "analytics"))
	mux.HandleFunc("/charts", MetricsMiddleware(s.chartsHandler.HandleRecommend, "charts"))
}

type errorResponse struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeValidationError(w http.ResponseWriter, violations []string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Code:       "validation_failed",
		Message:    "invalid analysis request",
		Violations: violations,
	})
}
