package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if PERFDECK_CONFIG is set
//  3. env (prefix PERFDECK_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PERFDECK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PERFDECK_ADDR, PERFDECK_MAX_ROWS, ...
	// Map env keys like PERFDECK_MAX_ROWS -> max_rows (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PERFDECK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "perfdeck_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.MaxRows < 0 {
		return nil, fmt.Errorf("%w: max_rows must not be negative", ErrInvalidConfig)
	}
	if cfg.DefaultPeriodDays <= 0 {
		return nil, fmt.Errorf("%w: default_period_days must be positive", ErrInvalidConfig)
	}
	for m, dir := range cfg.MetricDirections {
		switch strings.ToLower(dir) {
		case "lower", "higher":
		default:
			return nil, fmt.Errorf("%w: metric_directions[%s] must be lower or higher", ErrInvalidConfig, m)
		}
	}
	return &cfg, nil
}

// LowerIsBetterOverrides converts the configured direction strings into the
// map shape the direction registry accepts.
func (c *Config) LowerIsBetterOverrides() map[string]bool {
	if len(c.MetricDirections) == 0 {
		return nil
	}
	out := make(map[string]bool, len(c.MetricDirections))
	for m, dir := range c.MetricDirections {
		out[strings.ToUpper(strings.TrimSpace(m))] = strings.EqualFold(dir, "lower")
	}
	return out
}
