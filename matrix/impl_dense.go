// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row- or column-major) & safe accessors.
//
// Purpose:
//   - Provide one flat buffer with an explicit layout tag (Shape) and a single
//     offset formula that every element access goes through.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed logical i→j loop orders).
//   - Support copy-based sub-matrix extraction (Block, Induced, Row, Col, Diag).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense/New: O(r*c); At/Set: O(1); Clone: O(r*c); Block: O(h*w); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxApplyFunc = "ApplyFunc" // method tag used in error wrappers
	ctxBlock     = "Block"     // copy window
	ctxInduce    = "Induced"   // index-set copy
	ctxRow       = "Row"
	ctxCol       = "Col"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete matrix over a flat buffer.
//   - r,c hold dimensions (rows, cols); zero is legal, negative is not.
//   - data has length r*c, ordered according to shape.
//   - shape selects the offset formula (see Shape).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/ApplyFunc.
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous storage (len == r*c)
	shape          Shape     // physical layout of data
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// Options: WithShape (layout, default RowMajor), WithNoValidateNaNInf.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		shape:          o.shape,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// New assembles a Dense from the canonical triple (data, rows, cols) laid out
// in shape. data is copied; the caller keeps ownership of its slice.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when the policy is on and data holds a non-finite value.
//
// Complexity: Time O(r*c), Space O(r*c).
func New(data []float64, rows, cols int, shape Shape, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 || !shape.valid() {
		return nil, fmt.Errorf("New(%d,%d,%s): %w", rows, cols, shape, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("New: len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("New: data[%d]: %w", k, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf, shape: shape, validateNaNInf: o.validateNaNInf}, nil
}

// derive allocates a zero matrix that inherits m's numeric policy.
func (m *Dense) derive(rows, cols int, shape Shape) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		shape:          shape,
		validateNaNInf: m.validateNaNInf,
	}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Dims packs Rows() and Cols() into a single call.
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

// Shape reports the physical layout of the buffer.
func (m *Dense) Shape() Shape { return m.shape }

// Len returns rows*cols.
func (m *Dense) Len() int { return len(m.data) }

// RawData returns a copy of the physical buffer in Shape() order.
// Together with Rows, Cols and Shape it is the canonical external form.
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// offset maps logical (i, j) to a physical index. This is the single place
// where the layout is interpreted; callers must have bounds-checked (i, j).
func (m *Dense) offset(i, j int) int {
	if m.shape == ColMajor {
		return j*m.r + i
	}

	return i*m.c + j
}

// indexOf bounds-checks (row, col) and returns the physical offset.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// At returns the value at logical (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at logical (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf for non-finite v under policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape and numeric policy).
func (m *Dense) Clone() Matrix { return m.copyDense() }

// copyDense is Clone with the concrete return type.
func (m *Dense) copyDense() *Dense {
	out := m.derive(m.r, m.c, m.shape)
	copy(out.data, m.data)

	return out
}

// String renders logical rows as lines with comma-separated values, whatever
// the physical layout. Intended for diagnostics, not hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[m.offset(i, j)]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Row returns a copy of logical row i.
func (m *Dense) Row(i int) (Vec, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make(Vec, m.c)
	if m.shape == RowMajor {
		copy(out, m.data[i*m.c:(i+1)*m.c])
		return out, nil
	}
	for j := 0; j < m.c; j++ {
		out[j] = m.data[m.offset(i, j)]
	}

	return out, nil
}

// Col returns a copy of logical column j.
func (m *Dense) Col(j int) (Vec, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make(Vec, m.r)
	if m.shape == ColMajor {
		copy(out, m.data[j*m.r:(j+1)*m.r])
		return out, nil
	}
	for i := 0; i < m.r; i++ {
		out[i] = m.data[m.offset(i, j)]
	}

	return out, nil
}

// Diag returns a copy of the main diagonal (length min(r, c)).
func (m *Dense) Diag() Vec {
	n := min(m.r, m.c)
	out := make(Vec, n)
	for k := 0; k < n; k++ {
		out[k] = m.data[m.offset(k, k)]
	}

	return out
}

// Block copies the window [r0:r0+h, c0:c0+w) into a new matrix with the same
// shape and policy. Zero-area windows are legal.
//
// Errors: ErrBadShape when the window does not fit.
// Complexity: O(h*w).
func (m *Dense) Block(r0, c0, h, w int) (*Dense, error) {
	if r0 < 0 || c0 < 0 || h < 0 || w < 0 || r0+h > m.r || c0+w > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxBlock, r0, c0, h, w, ErrBadShape)
	}
	out := m.derive(h, w, m.shape)
	var i, j int
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			out.data[out.offset(i, j)] = m.data[m.offset(r0+i, c0+j)]
		}
	}

	return out, nil
}

// Induced materializes rows rowsIdx × cols colsIdx (duplicates allowed) into
// a new matrix with m's shape and policy.
//
// Errors: ErrOutOfRange when an index is outside bounds.
// Complexity: O(len(rowsIdx)*len(colsIdx)).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	out := m.derive(len(rowsIdx), len(colsIdx), m.shape)
	for i, ri := range rowsIdx {
		for j, cj := range colsIdx {
			out.data[out.offset(i, j)] = m.data[m.offset(ri, cj)]
		}
	}

	return out, nil
}

// Do visits each element in logical row-major order and calls f(i,j,v);
// stops early when f returns false. Order does not depend on Shape.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[m.offset(i, j)]) {
				return
			}
		}
	}
}

// ApplyFunc replaces each element with f(i,j,v) in place, in logical
// row-major order. Under the NaN/Inf policy the first non-finite result aborts
// with ErrNaNInf; elements written before it remain updated.
// Complexity: O(r*c).
func (m *Dense) ApplyFunc(f func(i, j int, v float64) float64) error {
	var i, j, off int
	var nv float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = m.offset(i, j)
			nv = f(i, j, m.data[off])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApplyFunc, i, j, ErrNaNInf)
			}
			m.data[off] = nv
		}
	}

	return nil
}
