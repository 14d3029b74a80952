package app

import (
	"time"

	"github.com/perfdeck/perfdeck/internal/adapters/repository"
	"github.com/perfdeck/perfdeck/internal/domain/charts"
	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the measurement data source.
func WithSource(source repository.Source) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithDirections sets the metric direction registry.
func WithDirections(reg *metric.DirectionRegistry) Option {
	return func(s *Service) {
		if reg != nil {
			s.directions = reg
		}
	}
}

// WithChartTable sets the chart recommendation table.
func WithChartTable(table *charts.Table) Option {
	return func(s *Service) {
		if table != nil {
			s.chartTable = table
		}
	}
}

// WithDefaultPeriod sets the window applied when a request names no
// period and no explicit dates.
func WithDefaultPeriod(period time.Duration) Option {
	return func(s *Service) {
		if period > 0 {
			s.defaultPeriod = period
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source; tests pin "now" with it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
