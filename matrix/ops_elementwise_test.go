// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestClip(t *testing.T) {
	m := mustNew(t, 2, 2, matrix.ColMajor, -5, 0.5, 2, 9)
	c, err := matrix.Clip(m, 1, 0) // bounds are normalized
	require.NoError(t, err)
	requireRows(t, c, [][]float64{{0, 0.5}, {1, 1}})

	_, err = matrix.Clip(m, math.Inf(-1), 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Clip(nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReplaceNonFinite(t *testing.T) {
	m, err := matrix.New([]float64{1, math.NaN(), math.Inf(1), -2}, 2, 2, matrix.RowMajor, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	r, err := matrix.ReplaceNonFinite(m, 0)
	require.NoError(t, err)
	requireRows(t, r, [][]float64{{1, 0}, {0, -2}})
	require.True(t, math.IsNaN(mustAt(t, m, 0, 1))) // input untouched

	_, err = matrix.ReplaceNonFinite(m, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllClose(t *testing.T) {
	a := mustNew(t, 1, 3, matrix.RowMajor, 1, 100, -3)
	b := mustNew(t, 1, 3, matrix.ColMajor, 1.0001, 100.01, -3)

	ok, err := matrix.AllClose(a, b, 1e-3, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-6, -1e-6) // negative tolerances taken by magnitude
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustNew(t, 3, 1, matrix.RowMajor, 1, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	n := mustNewLoose(t, 1, 2, math.NaN(), math.Inf(1))
	ok, err = matrix.AllClose(n, n, 1, 1)
	require.NoError(t, err)
	require.False(t, ok, "NaN is never close")

	inf := mustNewLoose(t, 1, 2, 0, math.Inf(1))
	ok, err = matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func mustNewLoose(t *testing.T, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(vals, rows, cols, matrix.RowMajor, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	return m
}
