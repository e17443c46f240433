// SPDX-License-Identifier: MIT

// Package algebra defines the numeric capability contracts shared by scalars,
// vectors and matrices, plus the Norm selector consumed by every norm kernel.
//
// The contracts form a refinement chain:
//
//	Vector[V, S]           - AddVec, SubVec, MulScalar (closed over V, scalars S)
//	Normed[V, S, U]        - Vector + Norm(kind) U + Normalize(kind) V
//	InnerProduct[V, S, U]  - Normed + Dot(rhs) S
//
// and three product contracts that stand beside it:
//
//	LinearOp[T, R]         - Apply(T) R (a linear map between vector spaces)
//	VectorProduct[V, M]    - Cross(V) V, Outer(V) M
//	MatrixProduct[M]       - Kronecker(M) M, Hadamard(M) M
//
// Every contract is a generic interface whose first type parameter is the
// implementing type itself, so generic helpers (Sum, Distance,
// LinearCombination) are instantiated per concrete type and call methods
// statically; there is no interface boxing on the hot path.
//
// Scalar is float64 viewed as a one-dimensional vector space over itself:
// every norm kind degenerates to |x| and Normalize degenerates to sign(x).
//
// Error policy:
//   - Sentinels live in errors.go; callers branch with errors.Is.
//   - Normalize on a zero value fails with ErrDegenerateNorm (never NaN/Inf).
//   - Cross on anything but three components fails with ErrUnsupportedDimension.
package algebra
