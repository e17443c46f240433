// SPDX-License-Identifier: MIT

// Package builder provides R/MATLAB/NumPy-like sequence constructors built
// on functional options:
//
//   - Seq(start, end, step)          - start, start+step, … ≤ end
//   - Linspace(start, end, n)        - n evenly spaced values, both ends included
//   - Logspace(start, end, n, base)  - base^x over Linspace exponents
//   - *WithPrecision variants        - every value rounded to a decimal digit count
//   - Concat, Cat                    - copy-based slice helpers
//   - Round                          - decimal rounding (gonum floats/scalar)
//
// Naive floating-point stepping accumulates representation error
// (0 + 9·0.001 is 0.009000000000000001); the precision variants, or
// WithPrecision on the plain constructors, round each value right after it is
// computed so results land exactly on the requested decimal grid.
//
// Guarantees:
//
//   - Pure functions: fresh slices, no global state, inputs never aliased.
//   - Preconditions are checked before any allocation and reported with
//     sentinel errors (errors.go); constructors never panic on user input.
//   - Option constructors panic on meaningless values (negative precision).
//
// Matrix constructors (Zeros, Eye, Rand, Cbind, Rbind) live in package matrix.
package builder
