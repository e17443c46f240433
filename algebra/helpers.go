// SPDX-License-Identifier: MIT
// Package algebra: generic helpers over the capability contracts.
//
// Each helper is instantiated per concrete type, so method calls are static.

package algebra

import "math"

// Sum folds AddVec over first, rest... in argument order.
// Complexity: O(k) AddVec calls.
func Sum[V Vector[V, S], S any](first V, rest ...V) (V, error) {
	acc := first
	var err error
	for _, v := range rest {
		if acc, err = acc.AddVec(v); err != nil {
			return acc, algebraErrorf("Sum", err)
		}
	}

	return acc, nil
}

// LinearCombination returns Σ coeffs[i]·vs[i].
// Errors: ErrEmptyInput when vs is empty, ErrDimensionMismatch when the slices
// differ in length or the vectors are incompatible.
func LinearCombination[V Vector[V, S], S any](coeffs []S, vs []V) (V, error) {
	var zero V
	if len(vs) == 0 {
		return zero, algebraErrorf("LinearCombination", ErrEmptyInput)
	}
	if len(coeffs) != len(vs) {
		return zero, algebraErrorf("LinearCombination", ErrDimensionMismatch)
	}

	acc := vs[0].MulScalar(coeffs[0])
	var err error
	for i := 1; i < len(vs); i++ {
		if acc, err = acc.AddVec(vs[i].MulScalar(coeffs[i])); err != nil {
			return zero, algebraErrorf("LinearCombination", err)
		}
	}

	return acc, nil
}

// Distance returns ‖a − b‖ under kind.
func Distance[V Normed[V, S, U], S, U any](a, b V, kind Norm) (U, error) {
	var zero U
	diff, err := a.SubVec(b)
	if err != nil {
		return zero, algebraErrorf("Distance", err)
	}
	d, err := diff.Norm(kind)
	if err != nil {
		return zero, algebraErrorf("Distance", err)
	}

	return d, nil
}

// ApplyAll maps op over xs, stopping at the first failure.
func ApplyAll[T, R any](op LinearOp[T, R], xs []T) ([]R, error) {
	out := make([]R, len(xs))
	var err error
	for i, x := range xs {
		if out[i], err = op.Apply(x); err != nil {
			return nil, algebraErrorf("ApplyAll", err)
		}
	}

	return out, nil
}

// Cosine returns ⟨a,b⟩ / (‖a‖·‖b‖) with norms induced by the inner product
// itself, so the result stays in [-1, 1] for any InnerProduct over float64.
// Errors: ErrDegenerateNorm when either operand has zero induced norm.
func Cosine[V InnerProduct[V, float64, float64]](a, b V) (float64, error) {
	ab, err := a.Dot(b)
	if err != nil {
		return 0, algebraErrorf("Cosine", err)
	}
	aa, err := a.Dot(a)
	if err != nil {
		return 0, algebraErrorf("Cosine", err)
	}
	bb, err := b.Dot(b)
	if err != nil {
		return 0, algebraErrorf("Cosine", err)
	}
	if aa == 0 || bb == 0 {
		return 0, algebraErrorf("Cosine", ErrDegenerateNorm)
	}

	return ab / math.Sqrt(aa*bb), nil
}
