// SPDX-License-Identifier: MIT

// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scaling, matrix and matrix-vector
// products, transpose, Hadamard and Kronecker products, and comparisons.
// All functions perform strict fail-fast validation and return wrapped
// sentinels on nil or mismatched operands.
//
// Stage pattern (shared by every kernel):
//   - Stage 1 (Validate): nil-checks and dimension checks.
//   - Stage 2 (Prepare): view both operands as *Dense (no copy for *Dense).
//   - Stage 3 (Execute): delegate to the *Dense kernel in impl_algebra.go.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
	opKronecker = "Kronecker"
	opDot       = "Dot"
	opNorm      = "Norm"
	opNormalize = "Normalize"
	opApply     = "Apply"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a RowMajor copy
// read through At. The copy path reads only in-bounds cells.
func asDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	rows, cols := m.Rows(), m.Cols()
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols), shape: RowMajor, validateNaNInf: DefaultValidateNaNInf}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j], _ = m.At(i, j) // safe: bounds ensured
		}
	}

	return out
}

// Add returns a + b element-wise. Complexity: O(r·c).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res, err := asDense(a).AddVec(asDense(b))
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// Sub returns a − b element-wise. Complexity: O(r·c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res, err := asDense(a).SubVec(asDense(b))
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Scale returns alpha·m. Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return asDense(m).MulScalar(alpha), nil
}

// Mul returns the matrix product a × b.
// Errors: ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r·n·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := asDense(a).Mul(asDense(b))
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MatVec returns y = m·x.
// Errors: ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r·c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y, err := asDense(m).Apply(Vec(x))
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return []float64(y), nil
}

// Transpose returns mᵀ. Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return asDense(m).Transpose(), nil
}

// Hadamard returns a ⊙ b. Errors: ErrDimensionMismatch on unequal dims.
// Complexity: O(r·c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res, err := asDense(a).Hadamard(asDense(b))
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return res, nil
}

// Kronecker returns a ⊗ b with dims (r1·r2) × (c1·c2).
// Complexity: O(r1·c1·r2·c2).
func Kronecker(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	res, err := asDense(a).Kronecker(asDense(b))
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	return res, nil
}

// Equal reports whether a and b have the same dims and identical logical
// elements. Physical layout is ignored. nil equals only nil.
func Equal(a, b Matrix) bool {
	return compare(a, b, func(x, y float64) bool { return x == y })
}

// EqualApprox reports whether |a[i,j] − b[i,j]| ≤ eps for every cell, with eps
// from WithEpsilon (default DefaultEpsilon). NaN never compares equal;
// equal infinities do.
func EqualApprox(a, b Matrix, opts ...Option) bool {
	eps := gatherOptions(opts...).eps

	return compare(a, b, func(x, y float64) bool {
		if x == y {
			return true // covers equal infinities
		}
		return math.Abs(x-y) <= eps
	})
}

// compare walks both operands in logical order until eq fails.
func compare(a, b Matrix, eq func(x, y float64) bool) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	da, db := asDense(a), asDense(b)
	var i, j int
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			if !eq(da.data[da.offset(i, j)], db.data[db.offset(i, j)]) {
				return false
			}
		}
	}

	return true
}
