// SPDX-License-Identifier: MIT
// Package algebra: capability contracts.
//
// The first type parameter of every contract is the implementing type, which
// lets generic code stay closed over one concrete type:
//
//	func Sum[V Vector[V, S], S any](first V, rest ...V) (V, error)
//
// Operations that can fail on shape return an error; operations that cannot
// (MulScalar) do not.

package algebra

// Vector is a value closed under addition, subtraction and scaling by S.
// Implementers are responsible for the vector-space axioms; the contract only
// fixes the signatures.
type Vector[V, S any] interface {
	// AddVec returns receiver + rhs. ErrDimensionMismatch on incompatible sizes.
	AddVec(rhs V) (V, error)

	// SubVec returns receiver − rhs. ErrDimensionMismatch on incompatible sizes.
	SubVec(rhs V) (V, error)

	// MulScalar returns s · receiver.
	MulScalar(s S) V
}

// Normed refines Vector with a norm whose result type U is non-negative.
type Normed[V, S, U any] interface {
	Vector[V, S]

	// Norm computes the requested variant. ErrUnsupportedNorm when the kind does
	// not apply to V; ErrInvalidNorm for malformed exponents.
	Norm(kind Norm) (U, error)

	// Normalize returns the receiver scaled to unit norm under kind.
	// ErrDegenerateNorm when the norm is zero.
	Normalize(kind Norm) (V, error)
}

// InnerProduct refines Normed with a dot product.
type InnerProduct[V, S, U any] interface {
	Normed[V, S, U]

	// Dot returns ⟨receiver, rhs⟩. ErrDimensionMismatch on incompatible sizes.
	Dot(rhs V) (S, error)
}

// LinearOp is a linear map from T to R (matrix-as-operator semantics).
type LinearOp[T, R any] interface {
	Apply(rhs T) (R, error)
}

// VectorProduct groups the products of two vectors of the same space; M is
// the matrix type produced by Outer.
type VectorProduct[V, M any] interface {
	// Cross is defined for 3-component vectors only (ErrUnsupportedDimension).
	Cross(rhs V) (V, error)

	// Outer returns receiver · rhsᵀ.
	Outer(rhs V) (M, error)
}

// MatrixProduct groups the structural matrix products.
type MatrixProduct[M any] interface {
	// Kronecker returns the block product with dims (r1·r2) × (c1·c2).
	Kronecker(rhs M) (M, error)

	// Hadamard returns the element-wise product; dims must match exactly.
	Hadamard(rhs M) (M, error)
}
