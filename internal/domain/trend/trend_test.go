package trend

import (
	"math"
	"testing"
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func point(athlete string, m metric.Metric, value float64, d int) model.MeasurementPoint {
	return model.MeasurementPoint{
		AthleteID:   athlete,
		AthleteName: athlete,
		Metric:      m,
		Value:       value,
		Date:        day(d),
	}
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPersonalBestFlags(t *testing.T) {
	reg := metric.NewDirectionRegistry()
	points := []model.MeasurementPoint{
		point("a1", metric.SprintTime, 10, 1),
		point("a1", metric.SprintTime, 8, 2),
		point("a1", metric.SprintTime, 9, 3),
		point("a1", metric.SprintTime, 7, 4),
	}

	series := Build(points, metric.SprintTime, []Athlete{{ID: "a1", Name: "a1"}}, reg)
	if len(series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(series))
	}
	want := []bool{true, true, false, true}
	if len(series[0].Points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(series[0].Points))
	}
	for i, p := range series[0].Points {
		if p.IsPersonalBest != want[i] {
			t.Errorf("point %d: expected PB=%v, got %v", i, want[i], p.IsPersonalBest)
		}
	}
}

func TestEqualValueIsNotANewBest(t *testing.T) {
	reg := metric.NewDirectionRegistry()
	points := []model.MeasurementPoint{
		point("a1", metric.VerticalJump, 23, 1),
		point("a1", metric.VerticalJump, 23, 2),
		point("a1", metric.VerticalJump, 24, 3),
	}

	series := Build(points, metric.VerticalJump, []Athlete{{ID: "a1"}}, reg)
	flags := []bool{series[0].Points[0].IsPersonalBest, series[0].Points[1].IsPersonalBest, series[0].Points[2].IsPersonalBest}
	if flags[0] != true || flags[1] != false || flags[2] != true {
		t.Errorf("expected [true false true], got %v", flags)
	}
}

func TestGroupBaselines(t *testing.T) {
	reg := metric.NewDirectionRegistry()
	points := []model.MeasurementPoint{
		point("a1", metric.VerticalJump, 20, 1),
		point("a2", metric.VerticalJump, 22, 1),
		point("a3", metric.VerticalJump, 24, 1),
		point("a1", metric.VerticalJump, 21, 2),
	}

	roster := []Athlete{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}
	series := Build(points, metric.VerticalJump, roster, reg)

	// Day 1 is shared by all three athletes: mean (20+22+24)/3, nearest-rank median 22.
	first := series[0].Points[0]
	if !floatEqual(first.GroupAverage, 22) {
		t.Errorf("expected group average 22, got %f", first.GroupAverage)
	}
	if !floatEqual(first.GroupMedian, 22) {
		t.Errorf("expected group median 22, got %f", first.GroupMedian)
	}

	// Every point sharing day 1 carries the same baselines.
	for i := 1; i < 3; i++ {
		p := series[i].Points[0]
		if !floatEqual(p.GroupAverage, 22) || !floatEqual(p.GroupMedian, 22) {
			t.Errorf("athlete %d day-1 baselines differ: %+v", i, p)
		}
	}

	// Day 2 has a single athlete, so baselines collapse to its own value.
	second := series[0].Points[1]
	if !floatEqual(second.GroupAverage, 21) || !floatEqual(second.GroupMedian, 21) {
		t.Errorf("expected day-2 baselines 21/21, got %+v", second)
	}
}

func TestChronologicalOrdering(t *testing.T) {
	reg := metric.NewDirectionRegistry()
	points := []model.MeasurementPoint{
		point("a1", metric.RSI, 2.0, 9),
		point("a1", metric.RSI, 2.2, 3),
		point("a1", metric.RSI, 2.1, 6),
	}

	series := Build(points, metric.RSI, []Athlete{{ID: "a1"}}, reg)
	pts := series[0].Points
	for i := 1; i < len(pts); i++ {
		if pts[i].Date.Before(pts[i-1].Date) {
			t.Fatalf("points out of order: %v before %v", pts[i].Date, pts[i-1].Date)
		}
	}
	if !pts[0].IsPersonalBest {
		t.Error("first chronological point must be a personal best")
	}
}

func TestEmptySeriesRetained(t *testing.T) {
	reg := metric.NewDirectionRegistry()
	points := []model.MeasurementPoint{
		point("a1", metric.RSI, 2.0, 1),
	}

	roster := []Athlete{{ID: "a1", Name: "Ada"}, {ID: "a2", Name: "Bo"}}
	series := Build(points, metric.RSI, roster, reg)

	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[1].AthleteID != "a2" {
		t.Fatalf("expected roster order preserved, got %q", series[1].AthleteID)
	}
	if series[1].Points == nil {
		t.Error("empty series must carry a non-nil point list")
	}
	if len(series[1].Points) != 0 {
		t.Errorf("expected empty point list, got %d points", len(series[1].Points))
	}
}

func TestOtherMetricsIgnored(t *testing.T) {
	reg := metric.NewDirectionRegistry()
	points := []model.MeasurementPoint{
		point("a1", metric.RSI, 2.0, 1),
		point("a1", metric.SprintTime, 1.2, 1),
	}

	series := Build(points, metric.RSI, []Athlete{{ID: "a1"}}, reg)
	if len(series[0].Points) != 1 {
		t.Errorf("expected 1 RSI point, got %d", len(series[0].Points))
	}
}
