// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/perfdeck/perfdeck/internal/domain/charts"
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// ChartsHandler serves chart recommendation previews so a dashboard can
// offer chart choices before running the full analysis.
type ChartsHandler struct {
	table *charts.Table
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(table *charts.Table) *ChartsHandler {
	return &ChartsHandler{table: table}
}

type chartsResponse struct {
	RecommendedCharts []string `json:"recommended_charts"`
}

// HandleRecommend handles GET /charts?analysis_type=&metric_count=&timeframe=.
func (h *ChartsHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommend_charts"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	count, err := strconv.Atoi(q.Get("metric_count"))
	if err != nil || count < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	recommended := h.table.Recommend(
		model.AnalysisType(q.Get("analysis_type")),
		count,
		model.TimeframeType(q.Get("timeframe")),
	)
	writeJSON(w, http.StatusOK, chartsResponse{RecommendedCharts: charts.Identifiers(recommended)})
}
