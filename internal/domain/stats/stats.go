// Package stats computes descriptive statistics over a numeric sample.
//
// Median and percentiles use the nearest-rank method (index floor(n*p),
// clamped), not linear interpolation. Downstream chart consumers expect
// values that exist in the sample, so nearest-rank is load-bearing here.
package stats

import (
	"math"
	"sort"

	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// Fixed percentile set of every summary.
var percentileLevels = []float64{0.05, 0.10, 0.25, 0.50, 0.75, 0.90, 0.95}

// Summarize computes the descriptive summary of one metric's sample. An
// empty sample yields the zero summary, never NaN. The input slice is not
// modified.
func Summarize(values []float64) model.StatisticalSummary {
	n := len(values)
	if n == 0 {
		return model.StatisticalSummary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	// Population variance: divide by n, not n-1.
	var sq float64
	for _, v := range sorted {
		d := v - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(n))

	return model.StatisticalSummary{
		Count:  n,
		Mean:   mean,
		Median: sorted[n/2],
		Min:    sorted[0],
		Max:    sorted[n-1],
		Std:    std,
		Percentiles: model.Percentiles{
			P5:  nearestRank(sorted, percentileLevels[0]),
			P10: nearestRank(sorted, percentileLevels[1]),
			P25: nearestRank(sorted, percentileLevels[2]),
			P50: nearestRank(sorted, percentileLevels[3]),
			P75: nearestRank(sorted, percentileLevels[4]),
			P90: nearestRank(sorted, percentileLevels[5]),
			P95: nearestRank(sorted, percentileLevels[6]),
		},
	}
}

// Median returns the nearest-rank median of values without computing the
// full summary. An empty sample yields 0.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[n/2]
}

// Mean returns the arithmetic mean of values; 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// nearestRank picks the sorted element at index floor(n*p), clamped to
// the valid range.
func nearestRank(sorted []float64, p float64) float64 {
	idx := int(math.Floor(float64(len(sorted)) * p))
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
