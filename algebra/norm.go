// SPDX-License-Identifier: MIT
// Package algebra: Norm selector.
//
// Norm is a small comparable value passed by value into norm kernels. Vector
// kinds (L1, L2, Lp, LInf) apply to vector-like values; matrix kinds
// (Frobenius, Lpq) apply to matrix-like values. Implementations decide which
// kinds they support and return ErrUnsupportedNorm otherwise.

package algebra

import (
	"fmt"
	"math"
)

// NormKind enumerates the norm variants.
type NormKind uint8

const (
	KindL1        NormKind = iota // Σ|x_i|
	KindL2                        // √(Σ x_i²)
	KindLp                        // (Σ|x_i|^p)^(1/p)
	KindLInf                      // max|x_i|
	KindFrobenius                 // √(Σ a_ij²)
	KindLpq                       // (Σ_j (Σ_i |a_ij|^p)^(q/p))^(1/q)
)

// minExponent is the smallest exponent for which Lp/Lpq is a norm.
const minExponent = 1.0

// Norm selects a norm variant. The zero value is L1.
type Norm struct {
	kind NormKind
	p, q float64
}

// L1 selects the taxicab norm.
func L1() Norm { return Norm{kind: KindL1, p: 1} }

// L2 selects the Euclidean norm.
func L2() Norm { return Norm{kind: KindL2, p: 2} }

// Lp selects the p-norm. p must be ≥ 1; +Inf is accepted and behaves as LInf.
func Lp(p float64) Norm { return Norm{kind: KindLp, p: p} }

// LInf selects the maximum norm.
func LInf() Norm { return Norm{kind: KindLInf, p: math.Inf(1)} }

// Frobenius selects the Frobenius (entry-wise L2) matrix norm.
func Frobenius() Norm { return Norm{kind: KindFrobenius, p: 2, q: 2} }

// Lpq selects the entry-wise L_{p,q} matrix norm (p over rows, q over columns).
func Lpq(p, q float64) Norm { return Norm{kind: KindLpq, p: p, q: q} }

// Kind reports the variant.
func (n Norm) Kind() NormKind { return n.kind }

// P returns the inner exponent (meaningful for Lp and Lpq).
func (n Norm) P() float64 { return n.p }

// Q returns the outer exponent (meaningful for Lpq).
func (n Norm) Q() float64 { return n.q }

// IsVectorKind reports whether n applies to vector-like values.
func (n Norm) IsVectorKind() bool {
	switch n.kind {
	case KindL1, KindL2, KindLp, KindLInf:
		return true
	}

	return false
}

// IsMatrixKind reports whether n is one of the matrix-only kinds.
func (n Norm) IsMatrixKind() bool {
	return n.kind == KindFrobenius || n.kind == KindLpq
}

// Validate checks exponents: p (and q for Lpq) must be ≥ 1 and not NaN.
func (n Norm) Validate() error {
	switch n.kind {
	case KindL1, KindL2, KindLInf, KindFrobenius:
		return nil
	case KindLp:
		if !validExponent(n.p) {
			return algebraErrorf(fmt.Sprintf("Norm.Validate(%s)", n), ErrInvalidNorm)
		}
		return nil
	case KindLpq:
		if !validExponent(n.p) || !validExponent(n.q) {
			return algebraErrorf(fmt.Sprintf("Norm.Validate(%s)", n), ErrInvalidNorm)
		}
		return nil
	}

	return algebraErrorf("Norm.Validate", ErrInvalidNorm)
}

func validExponent(p float64) bool {
	return !math.IsNaN(p) && p >= minExponent
}

// String renders the selector, e.g. "L2", "Lp(3)", "Lpq(2,1)".
func (n Norm) String() string {
	switch n.kind {
	case KindL1:
		return "L1"
	case KindL2:
		return "L2"
	case KindLp:
		return fmt.Sprintf("Lp(%g)", n.p)
	case KindLInf:
		return "LInf"
	case KindFrobenius:
		return "Frobenius"
	case KindLpq:
		return fmt.Sprintf("Lpq(%g,%g)", n.p, n.q)
	}

	return fmt.Sprintf("Norm(%d)", n.kind)
}
