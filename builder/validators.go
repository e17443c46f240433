// SPDX-License-Identifier: MIT
// Package: builder
//
// validators.go - precondition checks shared by the constructors. Each
// returns a bare sentinel; callers wrap it with builderErrorf.

package builder

import "math"

// validateFinite rejects NaN and ±Inf parameters.
func validateFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// validateAscending requires end ≥ start.
func validateAscending(start, end float64) error {
	if end < start {
		return ErrInvalidRange
	}

	return nil
}

// validateLength checks an evenly spaced request: n ≥ MinLength, and a single
// element only when both endpoints agree (otherwise end would silently
// overwrite start).
func validateLength(start, end float64, n int) error {
	if n < MinLength {
		return ErrInvalidLength
	}
	if n == 1 && start != end {
		return ErrInvalidRange
	}

	return nil
}
