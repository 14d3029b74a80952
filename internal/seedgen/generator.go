// Package seedgen produces deterministic, realistic measurement fixtures
// for local development and load testing. Values trend toward improvement
// over time so trend analyses over generated data look like real seasons.
package seedgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// Athlete is one generated roster entry.
type Athlete struct {
	ID        string
	FirstName string
	LastName  string
	Gender    string
	BirthDate time.Time
	TeamID    string
	TeamName  string
}

// Generator produces deterministic rosters and measurement rows from a
// fixed seed.
type Generator struct {
	rng      *rand.Rand
	athletes int
	trials   int
	dates    []time.Time
	teams    []string
}

// sample name pools for roster generation.
var (
	firstNames = []string{
		"Alex", "Jordan", "Sam", "Riley", "Casey", "Morgan", "Taylor",
		"Jamie", "Avery", "Quinn", "Reese", "Drew", "Skyler", "Rowan",
	}
	lastNames = []string{
		"Reyes", "Kim", "Okafor", "Novak", "Silva", "Haddad", "Lindqvist",
		"Moreau", "Tanaka", "Petrov", "Walsh", "Abara", "Costa", "Meyer",
	}
	genders = []string{"Male", "Female"}
)

// New creates a generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		athletes: defaultAthletes,
		trials:   defaultTrials,
		teams:    []string{"U16 Red", "U16 Blue", "U18 Gold"},
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(g.dates) == 0 {
		g.dates = g.randomDates(defaultDates, defaultDateStart, defaultDateEnd)
	}
	return g
}

// Roster returns a deterministic synthetic roster.
func (g *Generator) Roster() []Athlete {
	roster := make([]Athlete, g.athletes)
	for i := range roster {
		team := g.teams[i%len(g.teams)]
		birthYear := 2004 + g.rng.Intn(8)
		roster[i] = Athlete{
			ID:        uuid.NewString(),
			FirstName: firstNames[g.rng.Intn(len(firstNames))],
			LastName:  lastNames[g.rng.Intn(len(lastNames))],
			Gender:    genders[g.rng.Intn(len(genders))],
			BirthDate: time.Date(birthYear, time.Month(1+g.rng.Intn(12)), 1+g.rng.Intn(28), 0, 0, 0, 0, time.UTC),
			TeamID:    fmt.Sprintf("team-%d", i%len(g.teams)+1),
			TeamName:  team,
		}
	}
	return roster
}

// Measurements generates raw measurement rows for every athlete, metric,
// date and trial. Rows are emitted in a stable order so a fixed seed
// yields a byte-stable CSV.
func (g *Generator) Measurements(roster []Athlete) []model.RawRow {
	dates := append([]time.Time(nil), g.dates...)
	sortDates(dates)

	rows := make([]model.RawRow, 0, len(roster)*len(metricOrder)*len(dates)*g.trials)
	for _, athlete := range roster {
		// Small per-athlete bias so each athlete's data is internally
		// consistent across dates.
		offsets := make(map[string]float64, len(metricOrder))
		for _, m := range metricOrder {
			offsets[m] = g.rng.NormFloat64() * metricSpecs[m].sd * 0.5
		}

		state := make(map[string]*progress, len(metricOrder))
		for _, m := range metricOrder {
			state[m] = &progress{}
		}

		for _, day := range dates {
			age := ageOn(athlete.BirthDate, day)
			daysSinceStart := int(day.Sub(dates[0]).Hours() / 24)

			for _, m := range metricOrder {
				spec := metricSpecs[m]
				st := state[m]

				daysSincePrev := daysSinceStart
				if st.seen {
					daysSincePrev = int(day.Sub(st.date).Hours() / 24)
				}

				center := adjustedCenter(m, spec, age, athlete.Gender)
				anchor := g.progressiveAnchor(spec, offsets[m], center, daysSinceStart, daysSincePrev, st)
				requiredDelta := spec.progressPerDay * float64(maxInt(1, daysSincePrev))

				prevAnchor := st.anchor
				hadPrev := st.seen
				st.anchor, st.date, st.seen = anchor, day, true

				for trial := 0; trial < g.trials; trial++ {
					val := g.rng.NormFloat64()*spec.sd*0.4 + anchor
					if hadPrev {
						val = enforceProgress(spec, val, prevAnchor, requiredDelta)
					}
					val = clamp(val, spec.min, spec.max)

					rows = append(rows, model.RawRow{
						MeasurementID: uuid.NewString(),
						AthleteID:     athlete.ID,
						AthleteName:   athlete.FirstName + " " + athlete.LastName,
						TeamID:        athlete.TeamID,
						TeamName:      athlete.TeamName,
						Gender:        athlete.Gender,
						BirthYear:     athlete.BirthDate.Year(),
						Metric:        m,
						Value:         roundTo(val, 3),
						Date:          day.Format("2006-01-02"),
						Verified:      true,
					})
				}
			}
		}
	}
	return rows
}

// progress tracks the last anchor value emitted for one athlete/metric pair.
type progress struct {
	anchor float64
	date   time.Time
	seen   bool
}

// progressiveAnchor picks a per-date target value that trends with the
// metric drift and never regresses past the progress floor.
func (g *Generator) progressiveAnchor(spec metricSpec, offset, center float64, daysSinceStart, daysSincePrev int, st *progress) float64 {
	target := center + offset + spec.driftPerDay*float64(daysSinceStart)
	anchor := g.rng.NormFloat64()*spec.sd*0.2 + target

	if st.seen {
		requiredDelta := spec.progressPerDay * float64(maxInt(1, daysSincePrev))
		allowed := st.anchor + requiredDelta
		if spec.lowerIsBetter {
			if anchor > allowed {
				anchor = allowed - absFloat(requiredDelta)*0.3
			}
		} else {
			if anchor < allowed {
				anchor = allowed + absFloat(requiredDelta)*0.3
			}
		}
	}
	return clamp(anchor, spec.min, spec.max)
}

// enforceProgress keeps an individual trial from regressing more than half
// the expected per-date improvement.
func enforceProgress(spec metricSpec, trial, prevAnchor, requiredDelta float64) float64 {
	worstAllowed := prevAnchor + requiredDelta*0.5
	if spec.lowerIsBetter {
		if trial > worstAllowed {
			return worstAllowed
		}
	} else if trial < worstAllowed {
		return worstAllowed
	}
	return trial
}

// randomDates picks n distinct days inside [start, end].
func (g *Generator) randomDates(n int, start, end time.Time) []time.Time {
	span := int(end.Sub(start).Hours()/24) + 1
	seen := make(map[time.Time]struct{}, n)
	dates := make([]time.Time, 0, n)
	for len(dates) < n {
		d := start.AddDate(0, 0, g.rng.Intn(span))
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sortDates(dates)
	return dates
}

// ageOn returns whole years between birth and the given date.
func ageOn(birth, on time.Time) int {
	years := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		years--
	}
	return years
}

func sortDates(dates []time.Time) {
	for i := 1; i < len(dates); i++ {
		for j := i; j > 0 && dates[j].Before(dates[j-1]); j-- {
			dates[j], dates[j-1] = dates[j-1], dates[j]
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func roundTo(x float64, digits int) float64 {
	pow := 1.0
	for i := 0; i < digits; i++ {
		pow *= 10
	}
	if x < 0 {
		return float64(int64(x*pow-0.5)) / pow
	}
	return float64(int64(x*pow+0.5)) / pow
}
