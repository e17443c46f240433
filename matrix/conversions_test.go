// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGonum_RoundTrip exports both layouts and reads them back.
func TestGonum_RoundTrip(t *testing.T) {
	for _, s := range bothShapes {
		m := mustNew(t, 2, 3, s, 1, 2, 3, 4, 5, 6)

		g, err := matrix.ToGonum(m)
		require.NoError(t, err)
		r, c := g.Dims()
		require.Equal(t, 2, r)
		require.Equal(t, 3, c)
		require.Equal(t, 6.0, g.At(1, 2))

		// the export owns its buffer
		g.Set(0, 0, 100)
		require.Equal(t, 1.0, mustAt(t, m, 0, 0))

		back, err := matrix.FromGonum(g, matrix.WithShape(s))
		require.NoError(t, err)
		require.Equal(t, s, back.Shape())
		require.Equal(t, 100.0, mustAt(t, back, 0, 0))
	}
}

// TestFromGonum_Views reads transposes and symmetric types through At.
func TestFromGonum_Views(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	requireRows(t, tr, [][]float64{{1, 4}, {2, 5}, {3, 6}})

	sym := mat.NewSymDense(2, []float64{1, 7, 7, 2})
	sd, err := matrix.FromGonum(sym)
	require.NoError(t, err)
	requireRows(t, sd, [][]float64{{1, 7}, {7, 2}})
}

// TestGonum_Errors covers nil, empty and non-finite inputs.
func TestGonum_Errors(t *testing.T) {
	_, err := matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, _ := matrix.NewDense(0, 2)
	_, err = matrix.ToGonum(empty)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	g := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = matrix.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	lax, err := matrix.FromGonum(g, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt(t, lax, 0, 1)))
}
