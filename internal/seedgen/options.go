package seedgen

import (
	"math/rand"
	"time"
)

// Default generation parameters.
const (
	defaultSeed     = 42
	defaultAthletes = 40
	defaultTrials   = 3
	defaultDates    = 4
)

// Default random date window.
var (
	defaultDateStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	defaultDateEnd   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the random source so runs are reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAthletes sets the roster size.
func WithAthletes(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.athletes = n
		}
	}
}

// WithTrials sets how many trials are recorded per metric per test date.
func WithTrials(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.trials = n
		}
	}
}

// WithDates pins the exact test dates instead of sampling random ones.
func WithDates(dates []time.Time) Option {
	return func(g *Generator) {
		g.dates = dates
	}
}

// WithRandomDates samples n distinct test dates inside [start, end].
func WithRandomDates(n int, start, end time.Time) Option {
	return func(g *Generator) {
		g.dates = g.randomDates(n, start, end)
	}
}

// WithTeams overrides the team names athletes are spread across.
func WithTeams(teams []string) Option {
	return func(g *Generator) {
		if len(teams) > 0 {
			g.teams = teams
		}
	}
}
