// SPDX-License-Identifier: MIT
// Package matrix - public construction facades (MATLAB/R-like names).
//
// Purpose:
//   - Provide thin, intention-revealing constructors: Zeros, Eye, Rand and
//     their explicit-layout variants.
//   - Each facade delegates to NewDense; layout comes from WithShape.
//
// Determinism & Policy:
//   - Zeros/Eye are fully deterministic.
//   - Rand draws from gonum's distuv.Uniform on [0, 1); pass WithSeed or
//     WithRandSource for reproducible output.

package matrix

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// Zeros returns an r×c RowMajor zero matrix.
// Errors: ErrInvalidDimensions for negative sizes.
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosShape returns an r×c zero matrix laid out in shape.
func ZerosShape(rows, cols int, shape Shape) (*Dense, error) {
	return NewDense(rows, cols, WithShape(shape))
}

// Eye returns the RowMajor n×n identity.
func Eye(n int) (*Dense, error) {
	return EyeShape(n, RowMajor)
}

// EyeShape returns the n×n identity laid out in shape.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func EyeShape(n int, shape Shape) (*Dense, error) {
	I, err := NewDense(n, n, WithShape(shape))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[I.offset(i, i)] = 1.0
	}

	return I, nil
}

// Rand returns an r×c matrix of independent draws from U[0, 1).
// Layout is RowMajor unless WithShape says otherwise; the source comes from
// WithRandSource/WithSeed, or gonum's global source when absent.
// Complexity: O(r*c).
func Rand(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: gatherOptions(opts...).src}
	var i, j int
	for i = 0; i < rows; i++ { // logical order keeps a seeded stream layout-independent
		for j = 0; j < cols; j++ {
			m.data[m.offset(i, j)] = u.Rand()
		}
	}

	return m, nil
}

// ZerosLike returns a zero matrix with m's dims and shape.
func ZerosLike(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("ZerosLike", ErrNilMatrix)
	}

	return m.derive(m.r, m.c, m.shape), nil
}

// IdentityLike returns the identity with m's dimension and shape; m must be square.
func IdentityLike(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("IdentityLike", ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return EyeShape(m.r, m.shape)
}

// CloneMatrix returns a structural clone of m (same dynamic type).
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// ---------- Aliases kept for discoverability ----------

// NewZeros is an alias of Zeros.
func NewZeros(rows, cols int) (*Dense, error) { return Zeros(rows, cols) }

// NewIdentity is an alias of Eye.
func NewIdentity(n int) (*Dense, error) { return Eye(n) }

// T is an alias for Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// HadamardProd is an alias for Hadamard.
func HadamardProd(a, b Matrix) (Matrix, error) { return Hadamard(a, b) }

// ---------- Convenience facades (compositions only) ----------

// RowSums returns r[i] = Σ_j m[i,j]; implemented as MatVec with a ones vector.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// ColSums returns c[j] = Σ_i m[i,j]; implemented as MatVec on the transpose.
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return RowSums(mt)
}
