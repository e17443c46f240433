// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// The canonical external form of a Dense is (data, rows, cols, shape). gonum's
// *mat.Dense is always row-major, so exports go through the RowMajor buffer
// and imports read through mat.Matrix.At (which also covers gonum views,
// transposes and symmetric types).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix; ErrInvalidDimensions for empty matrices (gonum has
// no zero-sized Dense constructor).
// Complexity: O(r*c).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s(%dx%d): %w", opToGonum, m.r, m.c, ErrInvalidDimensions)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.bufferIn(RowMajor))

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense.
// Options: WithShape, WithNoValidateNaNInf.
// Errors: ErrNilMatrix; ErrNaNInf under the numeric policy.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}
