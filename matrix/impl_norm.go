// SPDX-License-Identifier: MIT

// Package matrix - matrix norms.
//
// Supported kinds for *Dense:
//   - Frobenius : √(Σ a_ij²)            (layout-free: one pass over the buffer)
//   - Lpq(p, q) : (Σ_j ‖A[:,j]‖_p^q)^(1/q)
//   - L1        : max_j Σ_i |a_ij|      (induced 1-norm, max abs column sum)
//   - LInf      : max_i Σ_j |a_ij|      (induced ∞-norm, max abs row sum)
//   - L2        : σ_max(A)              (spectral norm via gonum SVD)
//
// Lp on a matrix has no induced closed form here and returns ErrUnsupportedNorm.
// Empty matrices have norm 0 for every supported kind.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/algebra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Norm computes the requested matrix norm (see file header for the kinds).
// Errors: ErrInvalidNorm, ErrUnsupportedNorm, ErrSVDFailed.
func (m *Dense) Norm(kind algebra.Norm) (float64, error) {
	if err := kind.Validate(); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	switch kind.Kind() {
	case algebra.KindFrobenius:
		return floats.Norm(m.data, 2), nil
	case algebra.KindLpq:
		return m.lpqNorm(kind.P(), kind.Q()), nil
	case algebra.KindL1:
		return m.maxAbsColSum(), nil
	case algebra.KindLInf:
		return m.maxAbsRowSum(), nil
	case algebra.KindL2:
		return m.spectralNorm()
	}

	return 0, fmt.Errorf("%s(%s): %w", opNorm, kind, ErrUnsupportedNorm)
}

// Normalize returns m / ‖m‖ under kind.
// Errors: those of Norm, plus ErrDegenerateNorm when ‖m‖ == 0.
func (m *Dense) Normalize(kind algebra.Norm) (*Dense, error) {
	n, err := m.Norm(kind)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	if n == 0 {
		return nil, matrixErrorf(opNormalize, ErrDegenerateNorm)
	}

	return m.MulScalar(1 / n), nil
}

// lpqNorm computes the column-wise entry-wise L_{p,q} norm.
func (m *Dense) lpqNorm(p, q float64) float64 {
	cols := m.bufferIn(ColMajor)
	colNorms := make([]float64, m.c)
	for j := 0; j < m.c; j++ {
		colNorms[j] = floats.Norm(cols[j*m.r:(j+1)*m.r], p)
	}

	return floats.Norm(colNorms, q)
}

func (m *Dense) maxAbsColSum() float64 {
	cols := m.bufferIn(ColMajor)
	var best float64
	for j := 0; j < m.c; j++ {
		best = math.Max(best, floats.Norm(cols[j*m.r:(j+1)*m.r], 1))
	}

	return best
}

func (m *Dense) maxAbsRowSum() float64 {
	rows := m.bufferIn(RowMajor)
	var best float64
	for i := 0; i < m.r; i++ {
		best = math.Max(best, floats.Norm(rows[i*m.c:(i+1)*m.c], 1))
	}

	return best
}

// spectralNorm returns the largest singular value.
func (m *Dense) spectralNorm() (float64, error) {
	if m.r == 0 || m.c == 0 {
		return 0, nil
	}
	g, err := ToGonum(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDNone); !ok {
		return 0, matrixErrorf(opNorm, ErrSVDFailed)
	}

	return svd.Values(nil)[0], nil // singular values are sorted descending
}
