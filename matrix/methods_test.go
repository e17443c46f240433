// SPDX-License-Identifier: MIT
// Package matrix_test verifies the Matrix-level facades, including the
// generic path taken for non-*Dense implementations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestFacades_DenseAndFallback runs each facade with *Dense and hidden operands.
func TestFacades_DenseAndFallback(t *testing.T) {
	a := mustNew(t, 2, 2, matrix.ColMajor, 1, 2, 3, 4)
	b := mustNew(t, 2, 2, matrix.RowMajor, 5, 6, 7, 8)

	operands := []struct {
		name string
		a, b matrix.Matrix
	}{
		{"dense", a, b},
		{"hidden", hide{a}, hide{b}},
		{"mixed", a, hide{b}},
	}
	for _, op := range operands {
		t.Run(op.name, func(t *testing.T) {
			sum, err := matrix.Add(op.a, op.b)
			require.NoError(t, err)
			requireRows(t, sum, [][]float64{{6, 8}, {10, 12}})

			diff, err := matrix.Sub(op.b, op.a)
			require.NoError(t, err)
			requireRows(t, diff, [][]float64{{4, 4}, {4, 4}})

			sc, err := matrix.Scale(op.a, 0.5)
			require.NoError(t, err)
			requireRows(t, sc, [][]float64{{0.5, 1}, {1.5, 2}})

			prod, err := matrix.Mul(op.a, op.b)
			require.NoError(t, err)
			requireRows(t, prod, [][]float64{{19, 22}, {43, 50}})

			y, err := matrix.MatVec(op.a, []float64{1, 1})
			require.NoError(t, err)
			require.Equal(t, []float64{3, 7}, y)

			tr, err := matrix.Transpose(op.a)
			require.NoError(t, err)
			requireRows(t, tr, [][]float64{{1, 3}, {2, 4}})

			h, err := matrix.Hadamard(op.a, op.b)
			require.NoError(t, err)
			requireRows(t, h, [][]float64{{5, 12}, {21, 32}})

			k, err := matrix.Kronecker(op.a, op.b)
			require.NoError(t, err)
			require.Equal(t, 4, k.Rows())
			require.Equal(t, 15.0, mustAt(t, k, 2, 0)) // a[1,0]·b[0,0]
		})
	}
}

// TestFacades_Errors checks nil and dimension errors surface through the facades.
func TestFacades_Errors(t *testing.T) {
	a := mustNew(t, 2, 2, matrix.RowMajor, 1, 2, 3, 4)
	c := mustNew(t, 2, 3, matrix.RowMajor, 1, 2, 3, 4, 5, 6)
	var nilDense *matrix.Dense

	_, err := matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(c, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Kronecker(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// a failing facade returns an untyped nil Matrix
	res, err := matrix.Add(a, c)
	require.Error(t, err)
	require.Nil(t, res)
}

// TestEqual ignores layout and compares logical content.
func TestEqual(t *testing.T) {
	a := mustNew(t, 2, 2, matrix.RowMajor, 1, 2, 3, 4)
	b := mustNew(t, 2, 2, matrix.ColMajor, 1, 2, 3, 4)
	c := mustNew(t, 2, 2, matrix.RowMajor, 1, 2, 3, 4+1e-12)

	require.True(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal(hide{a}, b))
	require.False(t, matrix.Equal(a, c))
	require.True(t, matrix.EqualApprox(a, c))
	require.False(t, matrix.EqualApprox(a, c, matrix.WithEpsilon(0)))
	require.False(t, matrix.Equal(a, mustNew(t, 1, 4, matrix.RowMajor, 1, 2, 3, 4)))
	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(a, nil))

	inf, _ := matrix.New([]float64{math.Inf(1)}, 1, 1, matrix.RowMajor, matrix.WithNoValidateNaNInf())
	nan, _ := matrix.New([]float64{math.NaN()}, 1, 1, matrix.RowMajor, matrix.WithNoValidateNaNInf())
	require.True(t, matrix.EqualApprox(inf, inf.Clone()))
	require.False(t, matrix.EqualApprox(nan, nan))
}
