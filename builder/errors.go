// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//
// Priority (when several preconditions fail):
//   ErrNaNInf → ErrInvalidRange → ErrInvalidStep/ErrInvalidBase → ErrInvalidLength.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates end < start where an ascending range is required
// (Seq, Logspace), or differing endpoints for a single-element Linspace/Logspace.
var ErrInvalidRange = errors.New("builder: invalid range")

// ErrInvalidStep indicates a non-positive Seq step.
var ErrInvalidStep = errors.New("builder: step must be > 0")

// ErrInvalidLength indicates a non-positive element count, or a Seq whose
// element count would exceed MaxLength.
var ErrInvalidLength = errors.New("builder: invalid length")

// ErrInvalidBase indicates a Logspace base that is not finite and > 0.
var ErrInvalidBase = errors.New("builder: base must be finite and > 0")

// ErrNaNInf indicates a NaN or ±Inf numeric parameter.
var ErrNaNInf = errors.New("builder: NaN or Inf parameter")

// builderErrorf wraps err with the constructor name and a formatted detail.
// It returns an error of the form "<Method>(<detail>): <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
