// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every kernel - the physical layout tag
// and the minimal Matrix interface consumed by the generic (non-Dense) paths.
package matrix

import "fmt"

// Shape tags the physical layout of a Dense buffer.
//
//	RowMajor: offset(i, j) = i*cols + j
//	ColMajor: offset(i, j) = j*rows + i
//
// The logical matrix never depends on Shape; only the buffer ordering does.
type Shape uint8

const (
	// RowMajor stores rows contiguously (default for constructors).
	RowMajor Shape = iota
	// ColMajor stores columns contiguously.
	ColMajor
)

// Opposite returns the other layout.
func (s Shape) Opposite() Shape {
	if s == RowMajor {
		return ColMajor
	}

	return RowMajor
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case RowMajor:
		return "Row"
	case ColMajor:
		return "Col"
	}

	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// valid reports whether s is one of the two declared layouts.
func (s Shape) valid() bool { return s == RowMajor || s == ColMajor }

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the canonical implementation; package-level kernels accept any
// Matrix and take a flat-buffer fast path when both operands are *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at logical position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns v at logical position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
