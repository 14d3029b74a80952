// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults and Load(ctx) to layer
//   file and environment sources on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatabaseURL selects the Postgres measurement source. When empty the
	// service runs on the in-memory source.
	DatabaseURL string `koanf:"database_url"`

	// MaxRows caps the number of measurement rows fetched per request.
	MaxRows int `koanf:"max_rows"`

	// DefaultPeriodDays bounds the analysis window when a request names
	// neither explicit dates nor a period.
	DefaultPeriodDays int `koanf:"default_period_days"`

	// MetricDirections maps metric identifiers to "lower" or "higher",
	// overriding or extending the built-in direction registry.
	MetricDirections map[string]string `koanf:"metric_directions"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		MaxRows:           50_000,
		DefaultPeriodDays: 90,
		MetricDirections:  map[string]string{},
	}
}
