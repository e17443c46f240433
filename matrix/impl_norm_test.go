// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestDense_Norms checks every supported kind in both layouts.
func TestDense_Norms(t *testing.T) {
	for _, s := range bothShapes {
		m := mustNew(t, 2, 2, s, 1, -2, 3, 4)

		fro, err := m.Norm(algebra.Frobenius())
		require.NoError(t, err)
		require.InDelta(t, math.Sqrt(30), fro, 1e-14)

		l1, err := m.Norm(algebra.L1())
		require.NoError(t, err)
		require.Equal(t, 6.0, l1) // max(|1|+|3|, |-2|+|4|)

		linf, err := m.Norm(algebra.LInf())
		require.NoError(t, err)
		require.Equal(t, 7.0, linf) // max(1+2, 3+4)

		l21, err := m.Norm(algebra.Lpq(2, 1))
		require.NoError(t, err)
		require.InDelta(t, math.Sqrt(10)+math.Sqrt(20), l21, 1e-14)

		l22, err := m.Norm(algebra.Lpq(2, 2))
		require.NoError(t, err)
		require.InDelta(t, fro, l22, 1e-14)

		_, err = m.Norm(algebra.Lp(3))
		require.ErrorIs(t, err, matrix.ErrUnsupportedNorm)

		_, err = m.Norm(algebra.Lpq(0.5, 1))
		require.ErrorIs(t, err, matrix.ErrInvalidNorm)
	}
}

// TestDense_SpectralNorm compares L2 with gonum's norms and a known value.
func TestDense_SpectralNorm(t *testing.T) {
	m := mustNew(t, 2, 2, matrix.ColMajor, 1, 2, 3, 4)
	l2, err := m.Norm(algebra.L2())
	require.NoError(t, err)
	require.InDelta(t, 5.464985704219043, l2, 1e-12)

	diag := mustNew(t, 2, 2, matrix.RowMajor, 3, 0, 0, -4)
	l2, err = diag.Norm(algebra.L2())
	require.NoError(t, err)
	require.InDelta(t, 4.0, l2, 1e-12)

	r := mustRand(t, 4, 3, matrix.RowMajor, 5)
	g, _ := matrix.ToGonum(r)
	l1, _ := r.Norm(algebra.L1())
	require.InDelta(t, mat.Norm(g, 1), l1, 1e-12)
	linf, _ := r.Norm(algebra.LInf())
	require.InDelta(t, mat.Norm(g, math.Inf(1)), linf, 1e-12)
	fro, _ := r.Norm(algebra.Frobenius())
	require.InDelta(t, mat.Norm(g, 2), fro, 1e-12) // gonum: 2 is Frobenius

	empty, _ := matrix.NewDense(0, 3)
	l2, err = empty.Norm(algebra.L2())
	require.NoError(t, err)
	require.Equal(t, 0.0, l2)
}

// TestDense_Normalize scales to unit norm and rejects the zero matrix.
func TestDense_Normalize(t *testing.T) {
	m := mustNew(t, 1, 2, matrix.RowMajor, 3, 4)
	u, err := m.Normalize(algebra.Frobenius())
	require.NoError(t, err)
	requireRowsApprox(t, u, [][]float64{{0.6, 0.8}}, 1e-15)

	z, _ := matrix.Zeros(2, 2)
	_, err = z.Normalize(algebra.Frobenius())
	require.ErrorIs(t, err, matrix.ErrDegenerateNorm)
	require.ErrorIs(t, err, algebra.ErrDegenerateNorm)
}
