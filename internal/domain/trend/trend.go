// Package trend builds per-athlete time series with personal-best flags
// and per-date group comparison baselines.
package trend

import (
	"sort"
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
	"github.com/perfdeck/perfdeck/internal/domain/stats"
)

// Athlete identifies one series owner. The roster pins series presence
// and order: an athlete with zero qualifying points still gets a series
// with an empty point list, so consumers can tell "no series" from
// "series requested but empty".
type Athlete struct {
	ID   string
	Name string
}

// Build produces one TrendSeries per roster athlete for metric m. Input
// points are expected to be best-per-date filtered; points for other
// metrics are ignored.
//
// Group baselines are computed per date across all athletes sharing that
// date, not per athlete. A point is a personal best iff it strictly
// improves on the athlete's running best; the first point always is one.
func Build(points []model.MeasurementPoint, m metric.Metric, roster []Athlete, reg *metric.DirectionRegistry) []model.TrendSeries {
	byAthlete := make(map[string][]model.MeasurementPoint)
	byDate := make(map[time.Time][]float64)

	for _, p := range points {
		if p.Metric != m {
			continue
		}
		day := p.Day()
		byAthlete[p.AthleteID] = append(byAthlete[p.AthleteID], p)
		byDate[day] = append(byDate[day], p.Value)
	}

	baselines := make(map[time.Time]baseline, len(byDate))
	for day, values := range byDate {
		baselines[day] = baseline{
			average: stats.Mean(values),
			median:  stats.Median(values),
		}
	}

	series := make([]model.TrendSeries, 0, len(roster))
	for _, a := range roster {
		own := byAthlete[a.ID]
		sort.SliceStable(own, func(i, j int) bool {
			return own[i].Date.Before(own[j].Date)
		})

		ts := model.TrendSeries{
			AthleteID:   a.ID,
			AthleteName: a.Name,
			Metric:      m,
			Points:      make([]model.TrendPoint, 0, len(own)),
		}

		var runningBest float64
		for i, p := range own {
			day := p.Day()
			pb := i == 0 || reg.Improves(m, p.Value, runningBest)
			if pb {
				runningBest = p.Value
			}
			base := baselines[day]
			ts.Points = append(ts.Points, model.TrendPoint{
				Date:           day,
				Value:          p.Value,
				IsPersonalBest: pb,
				GroupAverage:   base.average,
				GroupMedian:    base.median,
			})
		}

		series = append(series, ts)
	}

	return series
}

type baseline struct {
	average float64
	median  float64
}
