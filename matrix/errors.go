// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for option constructors receiving nonsensical values.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvlalg/algebra"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels
// that describe a capability-contract violation are shared with package
// algebra, so errors.Is matches regardless of which package callers import.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimensions -> index -> NaN/Inf -> norm selector -> degenerate norm.

var (
	// ErrBadShape is returned when a requested window (Block) does not fit.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (New, Set, ApplyFunc).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates negative dimensions, or empty dimensions
	// where an operation needs at least one element (gonum export).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrSVDFailed indicates that the singular value decomposition behind the
	// spectral norm did not converge.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")

	// ErrSingular is returned by LU, Solve and Inverse on a zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry indicates a matrix expected to be symmetric is not (Eigen).
	ErrAsymmetry = errors.New("matrix: not symmetric")

	// ErrEigenFailed indicates that the Jacobi sweeps did not reach the
	// requested off-diagonal tolerance within the iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
)

// Shared with package algebra.
var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Cbind row mismatch, Rbind column mismatch, Hadamard shape mismatch.
	ErrDimensionMismatch = algebra.ErrDimensionMismatch

	// ErrDegenerateNorm is returned by Normalize on a zero-norm value.
	ErrDegenerateNorm = algebra.ErrDegenerateNorm

	// ErrUnsupportedDimension is returned by Vec.Cross on non-3-vectors.
	ErrUnsupportedDimension = algebra.ErrUnsupportedDimension

	// ErrUnsupportedNorm signals a Norm kind that does not apply to the value.
	ErrUnsupportedNorm = algebra.ErrUnsupportedNorm

	// ErrInvalidNorm signals a malformed Norm selector.
	ErrInvalidNorm = algebra.ErrInvalidNorm
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange
