package charts

import (
	"testing"

	"github.com/perfdeck/perfdeck/internal/domain/model"
)

var analysisTypes = []model.AnalysisType{
	model.AnalysisIndividual,
	model.AnalysisIntraGroup,
	model.AnalysisInterGroup,
}

var timeframes = []model.TimeframeType{
	model.TimeframeBest,
	model.TimeframeTrends,
}

func TestEveryCellIsPopulated(t *testing.T) {
	table := NewTable()
	for _, a := range analysisTypes {
		for _, count := range []int{1, 2, 3, 7} {
			for _, tf := range timeframes {
				got := table.Recommend(a, count, tf)
				if len(got) == 0 {
					t.Errorf("empty recommendation for (%s, %d, %s)", a, count, tf)
				}
			}
		}
	}
}

func TestRecommendationsAreDeterministic(t *testing.T) {
	table := NewTable()
	for _, a := range analysisTypes {
		for _, count := range []int{1, 2, 3} {
			for _, tf := range timeframes {
				first := table.Recommend(a, count, tf)
				for trial := 0; trial < 5; trial++ {
					again := table.Recommend(a, count, tf)
					if len(again) != len(first) {
						t.Fatalf("length changed for (%s, %d, %s)", a, count, tf)
					}
					for i := range first {
						if again[i] != first[i] {
							t.Fatalf("order changed for (%s, %d, %s)", a, count, tf)
						}
					}
				}
			}
		}
	}
}

func TestMetricCountBucketing(t *testing.T) {
	table := NewTable()
	three := table.Recommend(model.AnalysisIndividual, 3, model.TimeframeBest)
	seven := table.Recommend(model.AnalysisIndividual, 7, model.TimeframeBest)
	if len(three) != len(seven) {
		t.Fatal("3 and 7 metrics must land in the same bucket")
	}
	for i := range three {
		if three[i] != seven[i] {
			t.Fatal("3 and 7 metrics must produce identical recommendations")
		}
	}
}

func TestRadarLeadsMultiMetricBest(t *testing.T) {
	table := NewTable()
	for _, a := range analysisTypes {
		got := table.Recommend(a, 3, model.TimeframeBest)
		if got[0] != Radar {
			t.Errorf("expected radar first for (%s, 3, best), got %s", a, got[0])
		}
	}
}

func TestFallbacks(t *testing.T) {
	table := NewTable()
	raw := table.Recommend(model.AnalysisIndividual, 1, model.TimeframeType("raw"))
	best := table.Recommend(model.AnalysisIndividual, 1, model.TimeframeBest)
	if len(raw) != len(best) || raw[0] != best[0] {
		t.Error("non-trends timeframe must fall back to the best column")
	}

	unknown := table.Recommend(model.AnalysisType("cohort"), 1, model.TimeframeBest)
	if len(unknown) == 0 {
		t.Error("unknown analysis type must still produce a recommendation")
	}
}

func TestRecommendReturnsACopy(t *testing.T) {
	table := NewTable()
	first := table.Recommend(model.AnalysisIndividual, 1, model.TimeframeBest)
	first[0] = Chart("mutated")
	second := table.Recommend(model.AnalysisIndividual, 1, model.TimeframeBest)
	if second[0] == Chart("mutated") {
		t.Error("mutating a recommendation must not affect the table")
	}
}

func TestIdentifiers(t *testing.T) {
	ids := Identifiers([]Chart{Radar, GroupedBar})
	if len(ids) != 2 || ids[0] != "radar" || ids[1] != "grouped_bar" {
		t.Errorf("unexpected identifiers: %v", ids)
	}
}
