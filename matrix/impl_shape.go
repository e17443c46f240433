// SPDX-License-Identifier: MIT

// Package matrix - layout conversion.
//
// ChangeShape is a full O(r*c) materialization, not a stride trick: every
// logical (i, j) is read through the source offset formula and written
// through the target one. Converting twice reproduces the original buffer
// bit-for-bit.

package matrix

// ChangeShape returns a new matrix with identical logical content and the
// opposite Shape. m is not modified.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ChangeShape() *Dense {
	out := m.derive(m.r, m.c, m.shape.Opposite())
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[out.offset(i, j)] = m.data[m.offset(i, j)]
		}
	}

	return out
}

// AsShape returns a copy of m laid out in s: a clone when m already has s,
// a ChangeShape otherwise.
func (m *Dense) AsShape(s Shape) *Dense {
	if m.shape == s {
		return m.copyDense()
	}

	return m.ChangeShape()
}

// bufferIn returns m's buffer in layout s. The result aliases m.data when no
// conversion is needed, so callers must treat it as read-only.
func (m *Dense) bufferIn(s Shape) []float64 {
	if m.shape == s {
		return m.data
	}

	return m.ChangeShape().data
}

// Transpose returns mᵀ as a new matrix.
// A RowMajor r×c buffer read as ColMajor c×r is exactly the transpose, so
// only the buffer copy and the layout flip are needed.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	out := m.derive(m.c, m.r, m.shape.Opposite())
	copy(out.data, m.data)

	return out
}
