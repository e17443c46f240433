// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • precision = noPrecision (values are returned exactly as computed)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	precision int // decimal digits; noPrecision disables rounding
}

// newBuilderConfig applies options in order over the defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{precision: noPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// round applies the configured precision to v.
func (c builderConfig) round(v float64) float64 {
	if c.precision == noPrecision {
		return v
	}

	return Round(v, c.precision)
}
