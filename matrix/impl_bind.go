// SPDX-License-Identifier: MIT

// Package matrix - concatenation (R-like cbind / rbind).
//
// Both operands are first brought into the layout in which a raw buffer append
// equals a logical block append: ColMajor for Cbind (columns are contiguous),
// RowMajor for Rbind (rows are contiguous). Inputs are never modified; the
// result owns a fresh buffer.

package matrix

import "fmt"

const (
	opCbind = "Cbind"
	opRbind = "Rbind"
)

// Cbind places b to the right of a.
// Result: ColMajor, a.Rows() × (a.Cols()+b.Cols()), policy of a.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when row counts differ.
//
// Complexity: O(r*(c1+c2)).
func Cbind(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opCbind, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, fmt.Errorf("%s: rows %d vs %d: %w", opCbind, a.r, b.r, ErrDimensionMismatch)
	}

	out := a.derive(a.r, a.c+b.c, ColMajor)
	n := copy(out.data, a.bufferIn(ColMajor))
	copy(out.data[n:], b.bufferIn(ColMajor))

	return out, nil
}

// Rbind places b below a.
// Result: RowMajor, (a.Rows()+b.Rows()) × a.Cols(), policy of a.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when column counts differ.
//
// Complexity: O((r1+r2)*c).
func Rbind(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opRbind, ErrNilMatrix)
	}
	if a.c != b.c {
		return nil, fmt.Errorf("%s: cols %d vs %d: %w", opRbind, a.c, b.c, ErrDimensionMismatch)
	}

	out := a.derive(a.r+b.r, a.c, RowMajor)
	n := copy(out.data, a.bufferIn(RowMajor))
	copy(out.data[n:], b.bufferIn(RowMajor))

	return out, nil
}

// CbindAll folds Cbind left to right over ms (at least one operand).
func CbindAll(ms ...*Dense) (*Dense, error) { return bindAll(opCbind, Cbind, ms) }

// RbindAll folds Rbind top to bottom over ms (at least one operand).
func RbindAll(ms ...*Dense) (*Dense, error) { return bindAll(opRbind, Rbind, ms) }

func bindAll(tag string, bind func(a, b *Dense) (*Dense, error), ms []*Dense) (*Dense, error) {
	if len(ms) == 0 || ms[0] == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	acc := ms[0]
	var err error
	for _, m := range ms[1:] {
		if acc, err = bind(acc, m); err != nil {
			return nil, err
		}
	}
	if acc == ms[0] {
		// single operand: still return an independent matrix in the bind layout
		if tag == opCbind {
			return acc.AsShape(ColMajor), nil
		}
		return acc.AsShape(RowMajor), nil
	}

	return acc, nil
}
