// Package charts maps an analysis shape to an ordered list of suggested
// chart types. The decision table is the single source of truth for
// recommendation order; it performs no I/O and holds no mutable state.
package charts

import (
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// Chart identifies one chart type understood by the rendering layer.
type Chart string

// Chart types.
const (
	Bar        Chart = "bar"
	Line       Chart = "line"
	Area       Chart = "area"
	Radar      Chart = "radar"
	Scatter    Chart = "scatter"
	BoxPlot    Chart = "box_plot"
	GroupedBar Chart = "grouped_bar"
	MultiLine  Chart = "multi_line"
)

// metricBucket buckets the requested metric count into 1, 2, 3+.
type metricBucket int

const (
	oneMetric metricBucket = iota
	twoMetrics
	threePlusMetrics
)

func bucketOf(metricCount int) metricBucket {
	switch {
	case metricCount <= 1:
		return oneMetric
	case metricCount == 2:
		return twoMetrics
	default:
		return threePlusMetrics
	}
}

type cellKey struct {
	analysis  model.AnalysisType
	bucket    metricBucket
	timeframe model.TimeframeType
}

// Table is an immutable decision table covering every
// (analysisType x metricBucket x timeframeType) combination.
type Table struct {
	cells map[cellKey][]Chart
}

// NewTable creates the default decision table. All eighteen cells are
// populated with a fixed, non-empty ordered list.
func NewTable() *Table {
	cells := map[cellKey][]Chart{
		// individual
		{model.AnalysisIndividual, oneMetric, model.TimeframeBest}:          {Bar, Line},
		{model.AnalysisIndividual, oneMetric, model.TimeframeTrends}:        {Line, Area},
		{model.AnalysisIndividual, twoMetrics, model.TimeframeBest}:         {GroupedBar, Scatter},
		{model.AnalysisIndividual, twoMetrics, model.TimeframeTrends}:       {MultiLine, Line},
		{model.AnalysisIndividual, threePlusMetrics, model.TimeframeBest}:   {Radar, GroupedBar},
		{model.AnalysisIndividual, threePlusMetrics, model.TimeframeTrends}: {MultiLine, Radar},

		// intra_group
		{model.AnalysisIntraGroup, oneMetric, model.TimeframeBest}:          {Bar, BoxPlot},
		{model.AnalysisIntraGroup, oneMetric, model.TimeframeTrends}:        {MultiLine, Line},
		{model.AnalysisIntraGroup, twoMetrics, model.TimeframeBest}:         {Scatter, GroupedBar},
		{model.AnalysisIntraGroup, twoMetrics, model.TimeframeTrends}:       {MultiLine, Scatter},
		{model.AnalysisIntraGroup, threePlusMetrics, model.TimeframeBest}:   {Radar, GroupedBar},
		{model.AnalysisIntraGroup, threePlusMetrics, model.TimeframeTrends}: {Radar, MultiLine},

		// inter_group
		{model.AnalysisInterGroup, oneMetric, model.TimeframeBest}:          {GroupedBar, BoxPlot},
		{model.AnalysisInterGroup, oneMetric, model.TimeframeTrends}:        {MultiLine, Area},
		{model.AnalysisInterGroup, twoMetrics, model.TimeframeBest}:         {GroupedBar, Scatter},
		{model.AnalysisInterGroup, twoMetrics, model.TimeframeTrends}:       {MultiLine, GroupedBar},
		{model.AnalysisInterGroup, threePlusMetrics, model.TimeframeBest}:   {Radar, GroupedBar},
		{model.AnalysisInterGroup, threePlusMetrics, model.TimeframeTrends}: {Radar, MultiLine},
	}
	return &Table{cells: cells}
}

// Recommend returns the ordered chart suggestions for the given analysis
// shape, most recommended first. Timeframe types other than trends fall
// back to the best column; unknown analysis types fall back to
// intra_group, so the result is always non-empty. The returned slice is
// a copy; callers may mutate it freely.
func (t *Table) Recommend(analysis model.AnalysisType, metricCount int, timeframe model.TimeframeType) []Chart {
	tf := model.TimeframeBest
	if timeframe == model.TimeframeTrends {
		tf = model.TimeframeTrends
	}

	switch analysis {
	case model.AnalysisIndividual, model.AnalysisIntraGroup, model.AnalysisInterGroup:
	default:
		analysis = model.AnalysisIntraGroup
	}

	cell := t.cells[cellKey{analysis: analysis, bucket: bucketOf(metricCount), timeframe: tf}]
	out := make([]Chart, len(cell))
	copy(out, cell)
	return out
}

// Identifiers converts a recommendation list to plain string identifiers
// for the response envelope.
func Identifiers(recommended []Chart) []string {
	out := make([]string, len(recommended))
	for i, c := range recommended {
		out[i] = string(c)
	}
	return out
}
