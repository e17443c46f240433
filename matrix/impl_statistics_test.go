// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestMeansAndCentering(t *testing.T) {
	for _, s := range bothShapes {
		x := mustNew(t, 3, 2, s, 1, 2, 3, 4, 5, 6)

		cm, err := matrix.ColMeans(x)
		require.NoError(t, err)
		require.Equal(t, []float64{3, 4}, cm)

		rm, err := matrix.RowMeans(hide{x})
		require.NoError(t, err)
		require.Equal(t, []float64{1.5, 3.5, 5.5}, rm)

		xc, means, err := matrix.CenterColumns(x)
		require.NoError(t, err)
		require.Equal(t, cm, means)
		require.Equal(t, s, xc.Shape())
		requireRows(t, xc, [][]float64{{-2, -2}, {0, 0}, {2, 2}})

		xr, _, err := matrix.CenterRows(x)
		require.NoError(t, err)
		requireRows(t, xr, [][]float64{{-0.5, 0.5}, {-0.5, 0.5}, {-0.5, 0.5}})
	}

	empty, _ := matrix.NewDense(0, 2)
	cm, err := matrix.ColMeans(empty)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, cm)

	_, err = matrix.ColMeans(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalizeRows(t *testing.T) {
	x := mustNew(t, 2, 2, matrix.ColMajor, 1, 3, 0, 0)
	y, norms, err := matrix.NormalizeRows(x, algebra.L1())
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0}, norms)
	requireRows(t, y, [][]float64{{0.25, 0.75}, {0, 0}})

	_, _, err = matrix.NormalizeRows(x, algebra.Frobenius())
	require.ErrorIs(t, err, matrix.ErrUnsupportedNorm)
}

func TestCovarianceCorrelation(t *testing.T) {
	x := mustNew(t, 3, 2, matrix.ColMajor, 1, 2, 3, 4, 5, 6)

	cov, err := matrix.Covariance(x)
	require.NoError(t, err)
	requireRowsApprox(t, cov, [][]float64{{4, 4}, {4, 4}}, 1e-12)

	corr, err := matrix.Correlation(x)
	require.NoError(t, err)
	requireRowsApprox(t, corr, [][]float64{{1, 1}, {1, 1}}, 1e-12)

	anti := mustNew(t, 3, 2, matrix.RowMajor, 1, 3, 2, 2, 3, 1)
	corr, err = matrix.Correlation(anti)
	require.NoError(t, err)
	require.InDelta(t, -1.0, mustAt(t, corr, 0, 1), 1e-12)

	_, err = matrix.Covariance(mustNew(t, 1, 2, matrix.RowMajor, 1, 2))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	constant := mustNew(t, 3, 2, matrix.RowMajor, 1, 7, 2, 7, 3, 7)
	_, err = matrix.Correlation(constant)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
