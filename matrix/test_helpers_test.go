// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels in both layouts.
//   • Keep all data finite to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, forcing the generic
// (non-*Dense) materialization path in code under test.
type hide struct{ matrix.Matrix }

// bothShapes lists the two layouts for table-driven tests.
var bothShapes = []matrix.Shape{matrix.RowMajor, matrix.ColMajor}

// mustNew builds a matrix from logical row-major values, then lays it out in
// shape, so the same literal can be reused for both layouts.
func mustNew(t testing.TB, rows, cols int, shape matrix.Shape, rowMajor ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(rowMajor, rows, cols, matrix.RowMajor)
	require.NoError(t, err)

	return m.AsShape(shape)
}

// mustRand returns a seeded r×c uniform matrix in shape.
func mustRand(t testing.TB, rows, cols int, shape matrix.Shape, seed uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.Rand(rows, cols, matrix.WithSeed(seed), matrix.WithShape(shape))
	require.NoError(t, err)

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireRows asserts m's logical content row by row.
func requireRows(t testing.TB, m matrix.Matrix, want [][]float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols")
		for j, w := range row {
			require.Equalf(t, w, mustAt(t, m, i, j), "at (%d,%d)", i, j)
		}
	}
}

// requireRowsApprox is requireRows with an absolute tolerance.
func requireRowsApprox(t testing.TB, m matrix.Matrix, want [][]float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols")
		for j, w := range row {
			require.InDeltaf(t, w, mustAt(t, m, i, j), tol, "at (%d,%d)", i, j)
		}
	}
}
