package metric

// RegistryOption applies a configuration option to the DirectionRegistry.
type RegistryOption func(*DirectionRegistry)

// WithDirections merges explicit per-metric direction policy over the
// built-in defaults. Keys are parsed like any inbound identifier.
func WithDirections(directions map[string]bool) RegistryOption {
	return func(r *DirectionRegistry) {
		for raw, lower := range directions {
			m := Parse(raw)
			if m == "" {
				continue
			}
			r.lowerIsBetter[m] = lower
		}
	}
}

// WithoutDefaults clears the built-in battery so only explicitly
// configured metrics carry a lower-is-better policy.
func WithoutDefaults() RegistryOption {
	return func(r *DirectionRegistry) {
		r.lowerIsBetter = make(map[Metric]bool)
	}
}
