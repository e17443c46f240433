// SPDX-License-Identifier: MIT
// Package: builder
//
// sequences.go - ranged sequence constructors.
//
// Contract:
//   • Preconditions are validated before allocation; failures return wrapped
//     sentinels and a nil slice.
//   • Values are computed from the start point (start + step·i), never by
//     running accumulation, so error does not compound along the sequence.
//   • With WithPrecision every value is rounded immediately after it is computed.

package builder

import "math"

// Seq returns start, start+step, start+2·step, … up to and including the
// largest value not exceeding end. The element count is
// floor((end−start)/step) + 1, so start is always present and end appears only
// when step divides the range.
//
// Errors: ErrNaNInf, ErrInvalidRange (end < start), ErrInvalidStep (step ≤ 0),
// ErrInvalidLength (count > MaxLength).
// Complexity: O(n) time and space.
func Seq(start, end, step float64, opts ...Option) ([]float64, error) {
	if err := validateFinite(start, end, step); err != nil {
		return nil, builderErrorf(MethodSeq, err, "%g, %g, %g", start, end, step)
	}
	if err := validateAscending(start, end); err != nil {
		return nil, builderErrorf(MethodSeq, err, "end %g < start %g", end, start)
	}
	if step <= 0 {
		return nil, builderErrorf(MethodSeq, ErrInvalidStep, "step=%g", step)
	}

	factor := math.Floor((end - start) / step)
	if factor >= MaxLength {
		return nil, builderErrorf(MethodSeq, ErrInvalidLength, "count %g exceeds %d", factor+1, MaxLength)
	}

	cfg := newBuilderConfig(opts...)
	n := int(factor) + 1
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = cfg.round(start + step*float64(i))
	}

	return out, nil
}

// Linspace returns n evenly spaced values with out[0] == start and
// out[n-1] == end exactly. Descending ranges (end < start) are allowed.
// A single element is accepted only when start == end.
//
// Errors: ErrNaNInf, ErrInvalidLength (n < 1), ErrInvalidRange (n == 1 with
// start != end).
// Complexity: O(n) time and space.
func Linspace(start, end float64, n int, opts ...Option) ([]float64, error) {
	if err := validateFinite(start, end); err != nil {
		return nil, builderErrorf(MethodLinspace, err, "%g, %g", start, end)
	}
	if err := validateLength(start, end, n); err != nil {
		return nil, builderErrorf(MethodLinspace, err, "%g, %g, n=%d", start, end, n)
	}

	return evenly(start, end, n, newBuilderConfig(opts...), nil), nil
}

// Logspace returns base^x for the n exponents of Linspace(start, end, n). The
// first and last values are exactly base^start and base^end.
//
// Errors: ErrNaNInf, ErrInvalidRange (end < start, or n == 1 with
// start != end), ErrInvalidBase (base ≤ 0), ErrInvalidLength (n < 1).
// Complexity: O(n) time and space.
func Logspace(start, end float64, n int, base float64, opts ...Option) ([]float64, error) {
	if err := validateFinite(start, end, base); err != nil {
		return nil, builderErrorf(MethodLogspace, err, "%g, %g, base=%g", start, end, base)
	}
	if err := validateAscending(start, end); err != nil {
		return nil, builderErrorf(MethodLogspace, err, "end %g < start %g", end, start)
	}
	if base <= 0 {
		return nil, builderErrorf(MethodLogspace, ErrInvalidBase, "base=%g", base)
	}
	if err := validateLength(start, end, n); err != nil {
		return nil, builderErrorf(MethodLogspace, err, "%g, %g, n=%d", start, end, n)
	}

	return evenly(start, end, n, newBuilderConfig(opts...), func(x float64) float64 {
		return math.Pow(base, x)
	}), nil
}

// SeqWithPrecision is Seq with every value rounded to digits decimal places.
// Panics on negative digits (see WithPrecision).
func SeqWithPrecision(start, end, step float64, digits int) ([]float64, error) {
	return Seq(start, end, step, WithPrecision(digits))
}

// LinspaceWithPrecision is Linspace with every value rounded to digits
// decimal places. Panics on negative digits.
func LinspaceWithPrecision(start, end float64, n, digits int) ([]float64, error) {
	return Linspace(start, end, n, WithPrecision(digits))
}

// LogspaceWithPrecision is Logspace with every value rounded to digits
// decimal places. Panics on negative digits.
func LogspaceWithPrecision(start, end float64, n int, base float64, digits int) ([]float64, error) {
	return Logspace(start, end, n, base, WithPrecision(digits))
}

// evenly fills n points from start to end (endpoints pinned), mapping each
// through f when non-nil and rounding through cfg. Inputs are pre-validated.
func evenly(start, end float64, n int, cfg builderConfig, f func(float64) float64) []float64 {
	out := make([]float64, n)
	emit := func(i int, x float64) {
		if f != nil {
			x = f(x)
		}
		out[i] = cfg.round(x)
	}

	emit(0, start)
	if n == 1 {
		return out
	}
	step := (end - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		emit(i, start+step*float64(i))
	}
	emit(n-1, end)

	return out
}
