// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the sequence constructors.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

// Option customizes a constructor by mutating a builderConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithPrecision rounds every produced value to digits decimal places
// (half away from zero). Panics on negative digits.
func WithPrecision(digits int) Option {
	if digits < 0 {
		panic("builder: WithPrecision(digits < 0)")
	}

	return func(c *builderConfig) { c.precision = digits }
}
