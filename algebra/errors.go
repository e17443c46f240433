// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
//
// Implementations in other packages (matrix) return these sentinels, possibly
// wrapped with fmt.Errorf("ctx: %w", ErrX); match them with errors.Is.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands whose sizes are incompatible for a
	// binary operation (AddVec/SubVec/Dot/Hadamard/Apply).
	ErrDimensionMismatch = errors.New("algebra: dimension mismatch")

	// ErrDegenerateNorm is returned by Normalize when the norm of the receiver is
	// zero, so no unit-norm rescaling exists.
	ErrDegenerateNorm = errors.New("algebra: normalize of zero-norm value")

	// ErrUnsupportedDimension is returned by Cross for vectors whose length is not 3.
	ErrUnsupportedDimension = errors.New("algebra: unsupported dimension")

	// ErrUnsupportedNorm signals a Norm kind that does not apply to the receiver
	// (e.g. Frobenius on a vector, Lp on a matrix).
	ErrUnsupportedNorm = errors.New("algebra: norm kind not supported for this value")

	// ErrInvalidNorm signals a malformed Norm selector (p or q < 1, NaN or unknown kind).
	ErrInvalidNorm = errors.New("algebra: invalid norm parameters")

	// ErrEmptyInput indicates that a variadic helper received no operands.
	ErrEmptyInput = errors.New("algebra: empty input")
)

// algebraErrorf wraps err with an operation tag.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
