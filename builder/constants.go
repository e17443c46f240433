// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by the sequence constructors.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSeq is the canonical name for the Seq constructor.
	MethodSeq = "Seq"
	// MethodLinspace is the canonical name for the Linspace constructor.
	MethodLinspace = "Linspace"
	// MethodLogspace is the canonical name for the Logspace constructor.
	MethodLogspace = "Logspace"
)

//-----------------------------------------------------------------------------
// Limits
//-----------------------------------------------------------------------------

// MaxLength caps the element count Seq may allocate; a tiny step over a wide
// range fails with ErrInvalidLength instead of exhausting memory.
const MaxLength = 1 << 28

// MinLength is the smallest element count accepted by Linspace/Logspace.
const MinLength = 1

// noPrecision marks "do not round" in builderConfig.
const noPrecision = -1
