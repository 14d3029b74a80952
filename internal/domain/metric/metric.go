// Package metric defines the metric identifier type and the direction
// policy deciding whether a lower or higher value is better.
package metric

import "strings"

// Metric identifies one performance measure, e.g. a timed sprint or a jump
// height. Identifiers are upper-snake by convention.
type Metric string

// Known metrics from the platform's test battery.
const (
	Fly10Time    Metric = "FLY10_TIME"
	SprintTime   Metric = "SPRINT_TIME"
	Agility505   Metric = "AGILITY_505"
	TTest        Metric = "T_TEST"
	VerticalJump Metric = "VERTICAL_JUMP"
	RSI          Metric = "RSI"
)

// Parse normalizes a raw metric identifier. The empty result signals an
// unusable identifier; callers drop such rows at the boundary.
func Parse(raw string) Metric {
	return Metric(strings.ToUpper(strings.TrimSpace(raw)))
}

// DirectionRegistry is an immutable lookup from metric to direction policy.
// Metrics absent from the table default to higher-is-better.
type DirectionRegistry struct {
	lowerIsBetter map[Metric]bool
}

// defaultDirections covers the built-in test battery. Timed drills improve
// downward, jump and reactive-strength measures improve upward.
func defaultDirections() map[Metric]bool {
	return map[Metric]bool{
		Fly10Time:    true,
		SprintTime:   true,
		Agility505:   true,
		TTest:        true,
		VerticalJump: false,
		RSI:          false,
	}
}

// NewDirectionRegistry creates a registry seeded with the built-in test
// battery, then applies configuration options.
func NewDirectionRegistry(opts ...RegistryOption) *DirectionRegistry {
	r := &DirectionRegistry{
		lowerIsBetter: defaultDirections(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// LowerIsBetter reports whether a smaller value represents better
// performance for m. Unknown metrics default to higher-is-better.
func (r *DirectionRegistry) LowerIsBetter(m Metric) bool {
	return r.lowerIsBetter[m]
}

// Improves reports whether candidate is strictly better than incumbent for
// metric m. Equal values never improve.
func (r *DirectionRegistry) Improves(m Metric, candidate, incumbent float64) bool {
	if r.LowerIsBetter(m) {
		return candidate < incumbent
	}
	return candidate > incumbent
}

// Known reports the direction policy for m and whether the registry has
// an explicit entry for it.
func (r *DirectionRegistry) Known(m Metric) (lowerIsBetter, ok bool) {
	lower, ok := r.lowerIsBetter[m]
	return lower, ok
}

// Metrics returns the identifiers the registry has explicit policy for.
func (r *DirectionRegistry) Metrics() []Metric {
	out := make([]Metric, 0, len(r.lowerIsBetter))
	for m := range r.lowerIsBetter {
		out = append(out, m)
	}
	return out
}
