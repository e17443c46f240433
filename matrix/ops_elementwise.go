// SPDX-License-Identifier: MIT
// Package: matrix
//
// ops_elementwise.go - entry-wise maps and comparisons.
//
// All maps are layout-agnostic: the result keeps the input's Shape and walks
// the flat buffer once, so the physical order never matters.

package matrix

import (
	"math"
)

const (
	opClip             = "Clip"
	opReplaceNonFinite = "ReplaceNonFinite"
	opAllClose         = "AllClose"
)

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// mapEntries returns a copy of m (same Shape and policy) with f applied to
// every entry.
func mapEntries(m *Dense, f func(v float64) float64) *Dense {
	out := m.derive(m.r, m.c, m.shape)
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out
}

// Clip returns a copy of m with every entry clamped into [lo, hi].
// Bounds are swapped when lo > hi. NaN entries are kept as NaN.
// Errors: ErrNilMatrix, ErrNaNInf for non-finite bounds.
// Complexity: O(r*c).
func Clip(m Matrix, lo, hi float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if !isFinite(lo) || !isFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return mapEntries(asDense(m), func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}), nil
}

// ReplaceNonFinite returns a copy of m with every NaN or ±Inf replaced by val.
// Errors: ErrNilMatrix, ErrNaNInf when val itself is not finite.
// Complexity: O(r*c).
func ReplaceNonFinite(m Matrix, val float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceNonFinite, err)
	}
	if !isFinite(val) {
		return nil, matrixErrorf(opReplaceNonFinite, ErrNaNInf)
	}

	return mapEntries(asDense(m), func(v float64) float64 {
		if isFinite(v) {
			return v
		}
		return val
	}), nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for every
// cell. Negative tolerances are taken by magnitude. A NaN cell is never close;
// equal infinities are.
// Errors: ErrNaNInf for non-finite tolerances, ErrNilMatrix,
// ErrDimensionMismatch.
// Complexity: O(r*c), no allocation for same-layout *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	da := asDense(a)
	bb := asDense(b).bufferIn(da.shape)
	for k, av := range da.data {
		if av == bb[k] {
			continue
		}
		if !(math.Abs(av-bb[k]) <= atol+rtol*math.Abs(bb[k])) {
			return false, nil
		}
	}

	return true, nil
}
