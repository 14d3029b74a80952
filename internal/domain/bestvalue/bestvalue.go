// Package bestvalue collapses many measurement points into one best point
// per group, where "best" follows the metric's direction policy.
package bestvalue

import (
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

type groupKey struct {
	athleteID string
	metric    metric.Metric
	day       time.Time // zero in best mode
}

// Filter reduces points according to the timeframe type:
//
//   - best: one point per (athlete, metric);
//   - trends: one point per (athlete, metric, calendar day), so a date
//     with duplicate trials cannot distort a trend line;
//   - anything else: points pass through unfiltered.
//
// Within a group the minimum wins for lower-is-better metrics and the
// maximum otherwise. Ties keep the first-encountered point, so output is
// deterministic to input order, and filtering an already-filtered set is
// a no-op.
func Filter(points []model.MeasurementPoint, tf model.TimeframeType, reg *metric.DirectionRegistry) []model.MeasurementPoint {
	switch tf {
	case model.TimeframeBest, model.TimeframeTrends:
	default:
		return points
	}

	out := make([]model.MeasurementPoint, 0, len(points))
	index := make(map[groupKey]int, len(points))

	for _, p := range points {
		key := groupKey{athleteID: p.AthleteID, metric: p.Metric}
		if tf == model.TimeframeTrends {
			key.day = p.Day()
		}

		at, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, p)
			continue
		}
		if reg.Improves(p.Metric, p.Value, out[at].Value) {
			out[at] = p
		}
	}

	return out
}
