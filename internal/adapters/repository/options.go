package repository

import "github.com/perfdeck/perfdeck/internal/domain/model"

// PostgresOption applies a configuration option to the PostgresSource.
type PostgresOption func(*PostgresSource)

// WithMaxRows caps the number of rows one query may return.
func WithMaxRows(limit int) PostgresOption {
	return func(s *PostgresSource) {
		if limit > 0 {
			s.maxRows = limit
		}
	}
}

// MemoryOption applies a configuration option to the MemorySource.
type MemoryOption func(*MemorySource)

// WithSeedRows preloads the store with rows.
func WithSeedRows(rows []model.RawRow) MemoryOption {
	return func(s *MemorySource) {
		s.rows = append(s.rows, rows...)
	}
}
