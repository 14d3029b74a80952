// Package profile builds per-athlete percentile-rank vectors across
// multiple metrics for radar-style comparison.
package profile

import (
	"sort"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

const maxPercentile = 100

// athleteBest accumulates one athlete's best value per requested metric.
type athleteBest struct {
	id     string
	name   string
	values map[metric.Metric]float64
}

// Build produces one MultiMetricProfile per athlete holding a best value
// for every requested metric. Athletes missing even one metric are
// excluded entirely, even though they may appear elsewhere in the
// response. Fewer than two metrics yields no profiles.
//
// Percentile ranks are rank-based: with n qualifying athletes, an
// athlete at 0-based sorted position r gets r/(n-1)*100; a sole athlete
// gets exactly 100. Ties resolve to the first matching index, consistent
// with the best-value tie break.
func Build(points []model.MeasurementPoint, metrics []metric.Metric, reg *metric.DirectionRegistry) []model.MultiMetricProfile {
	if len(metrics) < 2 {
		return []model.MultiMetricProfile{}
	}

	requested := make(map[metric.Metric]bool, len(metrics))
	for _, m := range metrics {
		requested[m] = true
	}

	// Best value per (athlete, metric), athletes in first-encounter order.
	var order []string
	best := make(map[string]*athleteBest)

	for _, p := range points {
		if !requested[p.Metric] {
			continue
		}
		a, ok := best[p.AthleteID]
		if !ok {
			a = &athleteBest{
				id:     p.AthleteID,
				name:   p.AthleteName,
				values: make(map[metric.Metric]float64, len(metrics)),
			}
			best[p.AthleteID] = a
			order = append(order, p.AthleteID)
		}
		incumbent, has := a.values[p.Metric]
		if !has || reg.Improves(p.Metric, p.Value, incumbent) {
			a.values[p.Metric] = p.Value
		}
	}

	// Strict intersection: keep only athletes covering every metric.
	qualified := make([]*athleteBest, 0, len(order))
	for _, id := range order {
		a := best[id]
		complete := true
		for _, m := range metrics {
			if _, has := a.values[m]; !has {
				complete = false
				break
			}
		}
		if complete {
			qualified = append(qualified, a)
		}
	}
	if len(qualified) == 0 {
		return []model.MultiMetricProfile{}
	}

	ranks := percentileRanks(qualified, metrics)

	profiles := make([]model.MultiMetricProfile, 0, len(qualified))
	for i, a := range qualified {
		values := make(map[metric.Metric]float64, len(metrics))
		for _, m := range metrics {
			values[m] = a.values[m]
		}
		profiles = append(profiles, model.MultiMetricProfile{
			AthleteID:       a.id,
			AthleteName:     a.name,
			Metrics:         values,
			PercentileRanks: ranks[i],
		})
	}

	return profiles
}

// percentileRanks assigns each qualified athlete a 0..100 rank per metric.
func percentileRanks(qualified []*athleteBest, metrics []metric.Metric) []map[metric.Metric]float64 {
	n := len(qualified)
	ranks := make([]map[metric.Metric]float64, n)
	for i := range ranks {
		ranks[i] = make(map[metric.Metric]float64, len(metrics))
	}

	for _, m := range metrics {
		sorted := make([]float64, n)
		for i, a := range qualified {
			sorted[i] = a.values[m]
		}
		sort.Float64s(sorted)

		for i, a := range qualified {
			if n == 1 {
				ranks[i][m] = maxPercentile
				continue
			}
			rank := sort.SearchFloat64s(sorted, a.values[m]) // first-match index on ties
			ranks[i][m] = float64(rank) / float64(n-1) * maxPercentile
		}
	}

	return ranks
}
