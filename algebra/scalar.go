// SPDX-License-Identifier: MIT
// Package algebra: float64 as a one-dimensional vector space over itself.

package algebra

import "math"

// Scalar is a float64 participating in the capability contracts. Every norm
// kind reduces to |x|; Normalize reduces to sign(x).
type Scalar float64

var _ InnerProduct[Scalar, Scalar, float64] = Scalar(0)

// AddVec returns x + rhs. Never fails.
func (x Scalar) AddVec(rhs Scalar) (Scalar, error) { return x + rhs, nil }

// SubVec returns x − rhs. Never fails.
func (x Scalar) SubVec(rhs Scalar) (Scalar, error) { return x - rhs, nil }

// MulScalar returns s·x.
func (x Scalar) MulScalar(s Scalar) Scalar { return x * s }

// Norm returns |x| for any well-formed kind.
func (x Scalar) Norm(kind Norm) (float64, error) {
	if err := kind.Validate(); err != nil {
		return 0, algebraErrorf("Scalar.Norm", err)
	}

	return math.Abs(float64(x)), nil
}

// Normalize returns x/|x| (±1). Zero fails with ErrDegenerateNorm.
func (x Scalar) Normalize(kind Norm) (Scalar, error) {
	n, err := x.Norm(kind)
	if err != nil {
		return 0, algebraErrorf("Scalar.Normalize", err)
	}
	if n == 0 {
		return 0, algebraErrorf("Scalar.Normalize", ErrDegenerateNorm)
	}

	return x / Scalar(n), nil
}

// Dot returns x·rhs.
func (x Scalar) Dot(rhs Scalar) (Scalar, error) { return x * rhs, nil }

// Float64 unwraps the value.
func (x Scalar) Float64() float64 { return float64(x) }
