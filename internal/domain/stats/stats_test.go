package stats

import (
	"math"
	"math/rand"
	"testing"
)

func floatEqual(a, b float64) bool {
	const tolerance = 1e-9
	return math.Abs(a-b) < tolerance
}

func TestSummarizeEmptySample(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.Mean != 0 || s.Median != 0 || s.Min != 0 || s.Max != 0 || s.Std != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
	if s.Percentiles.P5 != 0 || s.Percentiles.P95 != 0 {
		t.Errorf("expected zero percentiles, got %+v", s.Percentiles)
	}
}

func TestSummarizeSingleValue(t *testing.T) {
	s := Summarize([]float64{1.25})
	if s.Count != 1 {
		t.Fatalf("expected count 1, got %d", s.Count)
	}
	for name, got := range map[string]float64{
		"mean": s.Mean, "median": s.Median, "min": s.Min, "max": s.Max,
		"p5": s.Percentiles.P5, "p50": s.Percentiles.P50, "p95": s.Percentiles.P95,
	} {
		if !floatEqual(got, 1.25) {
			t.Errorf("%s: expected 1.25, got %f", name, got)
		}
	}
	if s.Std != 0 {
		t.Errorf("expected std 0, got %f", s.Std)
	}
}

func TestSummarizeKnownSample(t *testing.T) {
	s := Summarize([]float64{4, 2, 1, 3})
	if s.Count != 4 {
		t.Fatalf("expected count 4, got %d", s.Count)
	}
	if !floatEqual(s.Mean, 2.5) {
		t.Errorf("expected mean 2.5, got %f", s.Mean)
	}
	// Nearest-rank median for even n is the element at floor(n/2), not an average.
	if !floatEqual(s.Median, 3) {
		t.Errorf("expected median 3, got %f", s.Median)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("expected min/max 1/4, got %f/%f", s.Min, s.Max)
	}
	// Population std: sqrt(((1.5)^2+(0.5)^2+(0.5)^2+(1.5)^2)/4) = sqrt(1.25)
	if !floatEqual(s.Std, math.Sqrt(1.25)) {
		t.Errorf("expected std sqrt(1.25), got %f", s.Std)
	}
	// floor(4*0.25)=1 -> 2; floor(4*0.75)=3 -> 4
	if !floatEqual(s.Percentiles.P25, 2) || !floatEqual(s.Percentiles.P75, 4) {
		t.Errorf("unexpected quartiles: %+v", s.Percentiles)
	}
}

func TestPercentileOrderingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(50)
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.NormFloat64() * 10
		}
		s := Summarize(values)
		p := s.Percentiles
		ordered := s.Min <= p.P5 && p.P5 <= p.P25 && p.P25 <= s.Median &&
			s.Median <= p.P75 && p.P75 <= p.P95 && p.P95 <= s.Max
		if !ordered {
			t.Fatalf("ordering violated for n=%d: %+v", n, s)
		}
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Summarize(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestMedianAndMeanHelpers(t *testing.T) {
	if Median(nil) != 0 || Mean(nil) != 0 {
		t.Error("expected 0 for empty samples")
	}
	if got := Median([]float64{9, 7, 8}); got != 8 {
		t.Errorf("expected median 8, got %f", got)
	}
	if got := Median([]float64{4, 1, 3, 2}); got != 3 {
		t.Errorf("expected nearest-rank median 3, got %f", got)
	}
	if got := Mean([]float64{1, 2, 3}); !floatEqual(got, 2) {
		t.Errorf("expected mean 2, got %f", got)
	}
}

func BenchmarkSummarize(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	values := make([]float64, 1000)
	for i := range values {
		values[i] = rng.Float64() * 100
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Summarize(values)
	}
}
