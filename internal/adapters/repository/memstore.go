package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// MemorySource is an in-memory Source for tests, demos, and local runs.
// Reads take a shared lock so concurrent analytics requests never block
// each other.
type MemorySource struct {
	mu   sync.RWMutex
	rows []model.RawRow
}

// NewMemorySource creates an empty in-memory source.
func NewMemorySource(opts ...MemoryOption) *MemorySource {
	s := &MemorySource{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends rows to the store.
func (s *MemorySource) Add(rows ...model.RawRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, rows...)
}

// Len returns the current number of stored rows.
func (s *MemorySource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Rows resolves the query, applying every filter including the date
// window. Row order follows insertion order.
func (s *MemorySource) Rows(_ context.Context, q Query) ([]model.RawRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RawRow, 0, len(s.rows))
	for _, r := range s.rows {
		if matches(r, q, true) {
			out = append(out, r)
		}
	}
	return out, nil
}

// AvailabilityCounts returns per-metric counts ignoring the date window.
func (s *MemorySource) AvailabilityCounts(_ context.Context, q Query) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, r := range s.rows {
		if matches(r, q, false) {
			counts[r.Metric]++
		}
	}
	return counts, nil
}

func matches(r model.RawRow, q Query, withDates bool) bool {
	if q.OrganizationID == "" {
		return false
	}
	if len(q.Metrics) > 0 && !containsFold(q.Metrics, r.Metric) {
		return false
	}
	if len(q.Teams) > 0 && !containsFold(q.Teams, r.TeamName) {
		return false
	}
	if len(q.Genders) > 0 && !containsFold(q.Genders, r.Gender) {
		return false
	}
	if len(q.AthleteIDs) > 0 && !contains(q.AthleteIDs, r.AthleteID) {
		return false
	}
	if q.BirthYearFrom > 0 && r.BirthYear < q.BirthYearFrom {
		return false
	}
	if q.BirthYearTo > 0 && r.BirthYear > q.BirthYearTo {
		return false
	}
	if q.VerifiedOnly && !r.Verified {
		return false
	}
	if withDates && q.windowed() {
		day, ok := parseRowDay(r.Date)
		if !ok {
			return false
		}
		if !q.Start.IsZero() && day.Before(q.Start) {
			return false
		}
		if !q.End.IsZero() && day.After(q.End) {
			return false
		}
	}
	return true
}

func contains(hay []string, needle string) bool {
	for _, h := range hay {
		if h == needle {
			return true
		}
	}
	return false
}

func containsFold(hay []string, needle string) bool {
	for _, h := range hay {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

// parseRowDay reads the leading calendar date of an ISO date string.
func parseRowDay(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
