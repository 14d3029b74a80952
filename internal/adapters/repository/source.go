// Package repository resolves analysis filters into raw measurement rows.
// It is the engine's only external data collaborator: the engine consumes
// already-filtered row sets and never filters by organization, team,
// gender, or date itself.
package repository

import (
	"context"
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// Query carries the resolved filters of one analysis request. Zero Start
// and End mean an unbounded window.
type Query struct {
	OrganizationID string
	Metrics        []string
	Teams          []string
	Genders        []string
	BirthYearFrom  int
	BirthYearTo    int
	AthleteIDs     []string
	VerifiedOnly   bool
	Start          time.Time
	End            time.Time
}

// windowed reports whether the query carries a date window.
func (q Query) windowed() bool {
	return !q.Start.IsZero() || !q.End.IsZero()
}

// Source is the row-level data access contract. Retry, timeout, and
// cancellation policy belong to implementations, not callers.
type Source interface {
	// Rows resolves the query into raw measurement rows.
	Rows(ctx context.Context, q Query) ([]model.RawRow, error)

	// AvailabilityCounts returns per-metric row counts for the query with
	// the date window ignored, so a metric selector can show "has any
	// data ever" independent of the active time window.
	AvailabilityCounts(ctx context.Context, q Query) (map[string]int, error)
}
