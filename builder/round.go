// SPDX-License-Identifier: MIT

package builder

import "gonum.org/v1/gonum/floats/scalar"

// Round returns x rounded to digits decimal places, half away from zero.
// Negative digits round to tens, hundreds, …; ±Inf and NaN are returned as is.
func Round(x float64, digits int) float64 {
	return scalar.Round(x, digits)
}

// RoundAll returns a new slice with Round applied to every element.
func RoundAll(xs []float64, digits int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = scalar.Round(x, digits)
	}

	return out
}
