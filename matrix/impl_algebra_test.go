// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestDense_VectorSpace exercises AddVec/SubVec/MulScalar/Dot across mixed layouts.
func TestDense_VectorSpace(t *testing.T) {
	for _, sa := range bothShapes {
		for _, sb := range bothShapes {
			a := mustNew(t, 2, 2, sa, 1, 2, 3, 4)
			b := mustNew(t, 2, 2, sb, 10, 20, 30, 40)

			sum, err := a.AddVec(b)
			require.NoError(t, err)
			require.Equal(t, sa, sum.Shape()) // receiver's layout wins
			requireRows(t, sum, [][]float64{{11, 22}, {33, 44}})

			diff, err := b.SubVec(a)
			require.NoError(t, err)
			requireRows(t, diff, [][]float64{{9, 18}, {27, 36}})

			requireRows(t, a.MulScalar(-2), [][]float64{{-2, -4}, {-6, -8}})

			dot, err := a.Dot(b)
			require.NoError(t, err)
			require.Equal(t, 300.0, dot) // 10+40+90+160
		}
	}

	a := mustNew(t, 2, 2, matrix.RowMajor, 1, 2, 3, 4)
	c := mustNew(t, 2, 3, matrix.RowMajor, 1, 2, 3, 4, 5, 6)
	_, err := a.AddVec(c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Dot(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDense_Hadamard requires identical dims.
func TestDense_Hadamard(t *testing.T) {
	a := mustNew(t, 2, 2, matrix.ColMajor, 1, 2, 3, 4)
	b := mustNew(t, 2, 2, matrix.RowMajor, 2, 2, 0.5, -1)
	h, err := a.Hadamard(b)
	require.NoError(t, err)
	requireRows(t, h, [][]float64{{2, 4}, {1.5, -4}})

	_, err = a.Hadamard(mustNew(t, 1, 4, matrix.RowMajor, 1, 2, 3, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_Kronecker checks the dimension product and compares with gonum.
func TestDense_Kronecker(t *testing.T) {
	for _, s := range bothShapes {
		a := mustRand(t, 2, 3, s, 7)
		b := mustRand(t, 3, 2, s.Opposite(), 8)

		k, err := a.Kronecker(b)
		require.NoError(t, err)
		require.Equal(t, 6, k.Rows())
		require.Equal(t, 6, k.Cols())

		ga, err := matrix.ToGonum(a)
		require.NoError(t, err)
		gb, err := matrix.ToGonum(b)
		require.NoError(t, err)
		var want mat.Dense
		want.Kronecker(ga, gb)
		wd, err := matrix.FromGonum(&want)
		require.NoError(t, err)
		require.True(t, matrix.EqualApprox(k, wd, matrix.WithEpsilon(1e-15)))
	}

	small := mustNew(t, 1, 2, matrix.RowMajor, 1, 2)
	k, err := small.Kronecker(mustNew(t, 2, 1, matrix.RowMajor, 3, 4))
	require.NoError(t, err)
	requireRows(t, k, [][]float64{{3, 6}, {4, 8}})

	_, err = small.Kronecker(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDense_Mul compares the product with gonum in every layout pairing.
func TestDense_Mul(t *testing.T) {
	for _, sa := range bothShapes {
		for _, sb := range bothShapes {
			a := mustRand(t, 3, 4, sa, 11)
			b := mustRand(t, 4, 2, sb, 12)

			p, err := a.Mul(b)
			require.NoError(t, err)
			require.Equal(t, matrix.RowMajor, p.Shape())

			ga, _ := matrix.ToGonum(a)
			gb, _ := matrix.ToGonum(b)
			var want mat.Dense
			want.Mul(ga, gb)
			wd, err := matrix.FromGonum(&want)
			require.NoError(t, err)
			require.True(t, matrix.EqualApprox(p, wd, matrix.WithEpsilon(1e-12)))
		}
	}

	a := mustNew(t, 2, 2, matrix.RowMajor, 1, 2, 3, 4)
	_, err := a.Mul(mustNew(t, 3, 1, matrix.RowMajor, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_Apply is the LinearOp contract in both layouts.
func TestDense_Apply(t *testing.T) {
	for _, s := range bothShapes {
		m := mustNew(t, 2, 3, s, 1, 2, 3, 4, 5, 6)
		y, err := m.Apply(matrix.Vec{1, 0, -1})
		require.NoError(t, err)
		require.Equal(t, matrix.Vec{-2, -2}, y)

		_, err = m.Apply(matrix.Vec{1, 2})
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}

// TestDense_GenericHelpers runs the algebra helpers over *Dense and Vec.
func TestDense_GenericHelpers(t *testing.T) {
	a := mustNew(t, 1, 2, matrix.RowMajor, 1, 2)
	b := mustNew(t, 1, 2, matrix.ColMajor, 3, 4)

	sum, err := algebra.Sum[*matrix.Dense, float64](a, b, a)
	require.NoError(t, err)
	requireRows(t, sum, [][]float64{{5, 8}})

	d, err := algebra.Distance[*matrix.Dense, float64, float64](a, b, algebra.Frobenius())
	require.NoError(t, err)
	require.InDelta(t, 2.8284271247461903, d, 1e-14)

	cos, err := algebra.Cosine(matrix.Vec{1, 0}, matrix.Vec{1, 1})
	require.NoError(t, err)
	require.InDelta(t, 0.7071067811865475, cos, 1e-15)

	_, err = algebra.Cosine(matrix.Vec{0, 0}, matrix.Vec{1, 1})
	require.ErrorIs(t, err, algebra.ErrDegenerateNorm)

	m := mustNew(t, 2, 2, matrix.ColMajor, 0, 1, 1, 0) // swap
	out, err := algebra.ApplyAll[matrix.Vec, matrix.Vec](m, []matrix.Vec{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, []matrix.Vec{{2, 1}, {4, 3}}, out)
}
