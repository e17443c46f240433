// SPDX-License-Identifier: MIT

// Package matrix - Vec, a dense column vector.
//
// Vec is a plain []float64 with value semantics at the API boundary: every
// operation returns a fresh slice and never writes into its operands.
// It implements algebra.InnerProduct[Vec, float64, float64] and
// algebra.VectorProduct[Vec, *Dense]. Vector norms (L1, L2, Lp, LInf) are
// computed with gonum floats.Norm; matrix kinds return ErrUnsupportedNorm.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"gonum.org/v1/gonum/floats"
)

// crossDim is the only dimension for which the cross product is defined.
const crossDim = 3

const (
	opCross = "Vec.Cross"
	opOuter = "Vec.Outer"
)

// Vec is a dense column vector.
type Vec []float64

var (
	_ algebra.InnerProduct[Vec, float64, float64] = Vec(nil)
	_ algebra.VectorProduct[Vec, *Dense]          = Vec(nil)
)

// NewVec returns a zero vector of length n (n<0 is treated as 0).
func NewVec(n int) Vec { return make(Vec, max(n, 0)) }

// Len returns the number of components.
func (v Vec) Len() int { return len(v) }

// Clone returns an independent copy.
func (v Vec) Clone() Vec {
	out := make(Vec, len(v))
	copy(out, v)

	return out
}

func (v Vec) sameLen(tag string, rhs Vec) error {
	if len(v) != len(rhs) {
		return fmt.Errorf("%s: len %d vs %d: %w", tag, len(v), len(rhs), ErrDimensionMismatch)
	}

	return nil
}

// AddVec returns v + rhs. Errors: ErrDimensionMismatch.
func (v Vec) AddVec(rhs Vec) (Vec, error) {
	if err := v.sameLen("Vec.AddVec", rhs); err != nil {
		return nil, err
	}

	return floats.AddTo(make(Vec, len(v)), v, rhs), nil
}

// SubVec returns v − rhs. Errors: ErrDimensionMismatch.
func (v Vec) SubVec(rhs Vec) (Vec, error) {
	if err := v.sameLen("Vec.SubVec", rhs); err != nil {
		return nil, err
	}

	return floats.SubTo(make(Vec, len(v)), v, rhs), nil
}

// MulScalar returns s·v.
func (v Vec) MulScalar(s float64) Vec {
	return floats.ScaleTo(make(Vec, len(v)), s, v)
}

// Dot returns Σ v_i·rhs_i. Errors: ErrDimensionMismatch.
func (v Vec) Dot(rhs Vec) (float64, error) {
	if err := v.sameLen("Vec.Dot", rhs); err != nil {
		return 0, err
	}

	return floats.Dot(v, rhs), nil
}

// Norm computes L1, L2, Lp or LInf. Errors: ErrInvalidNorm, ErrUnsupportedNorm.
func (v Vec) Norm(kind algebra.Norm) (float64, error) {
	if err := kind.Validate(); err != nil {
		return 0, matrixErrorf("Vec.Norm", err)
	}
	if !kind.IsVectorKind() {
		return 0, fmt.Errorf("Vec.Norm(%s): %w", kind, ErrUnsupportedNorm)
	}

	// P() is 1, 2, p or +Inf for the vector kinds, matching floats.Norm.
	return floats.Norm(v, kind.P()), nil
}

// Normalize returns v/‖v‖. Errors: those of Norm, ErrDegenerateNorm on zero.
func (v Vec) Normalize(kind algebra.Norm) (Vec, error) {
	n, err := v.Norm(kind)
	if err != nil {
		return nil, matrixErrorf("Vec.Normalize", err)
	}
	if n == 0 {
		return nil, matrixErrorf("Vec.Normalize", ErrDegenerateNorm)
	}

	return v.MulScalar(1 / n), nil
}

// Cross returns v × rhs for 3-component vectors.
// Errors: ErrUnsupportedDimension when either length is not 3.
func (v Vec) Cross(rhs Vec) (Vec, error) {
	if len(v) != crossDim || len(rhs) != crossDim {
		return nil, fmt.Errorf("%s: len %d, %d: %w", opCross, len(v), len(rhs), ErrUnsupportedDimension)
	}

	return Vec{
		v[1]*rhs[2] - v[2]*rhs[1],
		v[2]*rhs[0] - v[0]*rhs[2],
		v[0]*rhs[1] - v[1]*rhs[0],
	}, nil
}

// Outer returns the RowMajor len(v) × len(rhs) matrix v·rhsᵀ.
// Never fails; the error keeps the VectorProduct contract uniform.
func (v Vec) Outer(rhs Vec) (*Dense, error) {
	out, err := NewDense(len(v), len(rhs))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	for i, vi := range v {
		floats.ScaleTo(out.data[i*len(rhs):(i+1)*len(rhs)], vi, rhs)
	}

	return out, nil
}

// AsColumn returns v as a RowMajor len(v) × 1 matrix.
func (v Vec) AsColumn() *Dense {
	out, _ := NewDense(len(v), 1) // non-negative dims cannot fail
	copy(out.data, v)

	return out
}

// AsRow returns v as a RowMajor 1 × len(v) matrix.
func (v Vec) AsRow() *Dense {
	out, _ := NewDense(1, len(v))
	copy(out.data, v)

	return out
}
