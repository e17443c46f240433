// SPDX-License-Identifier: MIT

// Package matrix - *Dense as a member of the algebra capability contracts.
//
// Dense is:
//   - algebra.InnerProduct[*Dense, float64, float64] (entry-wise vector space,
//     Frobenius inner product, norms in impl_norm.go);
//   - algebra.MatrixProduct[*Dense] (Kronecker, Hadamard);
//   - algebra.LinearOp[Vec, Vec] (y = A·x).
//
// Layout policy:
//   - Element-wise kernels run a single flat loop over the receiver's buffer;
//     the right operand is first brought into the receiver's layout with
//     bufferIn (no copy when layouts already match). Results keep the
//     receiver's Shape and numeric policy.
//   - Mul and Kronecker produce RowMajor results.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"gonum.org/v1/gonum/floats"
)

var (
	_ algebra.InnerProduct[*Dense, float64, float64] = (*Dense)(nil)
	_ algebra.MatrixProduct[*Dense]                  = (*Dense)(nil)
	_ algebra.LinearOp[Vec, Vec]                     = (*Dense)(nil)
)

// sameDims validates a non-nil rhs with m's dimensions.
func (m *Dense) sameDims(tag string, rhs *Dense) error {
	if rhs == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if m.r != rhs.r || m.c != rhs.c {
		return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, m.r, m.c, rhs.r, rhs.c, ErrDimensionMismatch)
	}

	return nil
}

// AddVec returns m + rhs (entry-wise). Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func (m *Dense) AddVec(rhs *Dense) (*Dense, error) {
	if err := m.sameDims(opAdd, rhs); err != nil {
		return nil, err
	}
	out := m.derive(m.r, m.c, m.shape)
	floats.AddTo(out.data, m.data, rhs.bufferIn(m.shape))

	return out, nil
}

// SubVec returns m − rhs (entry-wise). Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func (m *Dense) SubVec(rhs *Dense) (*Dense, error) {
	if err := m.sameDims(opSub, rhs); err != nil {
		return nil, err
	}
	out := m.derive(m.r, m.c, m.shape)
	floats.SubTo(out.data, m.data, rhs.bufferIn(m.shape))

	return out, nil
}

// MulScalar returns s·m. Complexity: O(r·c).
func (m *Dense) MulScalar(s float64) *Dense {
	out := m.derive(m.r, m.c, m.shape)
	floats.ScaleTo(out.data, s, m.data)

	return out
}

// Dot returns the Frobenius inner product Σ m[i,j]·rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Dot(rhs *Dense) (float64, error) {
	if err := m.sameDims(opDot, rhs); err != nil {
		return 0, err
	}

	return floats.Dot(m.data, rhs.bufferIn(m.shape)), nil
}

// Hadamard returns m ⊙ rhs. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func (m *Dense) Hadamard(rhs *Dense) (*Dense, error) {
	if err := m.sameDims(opHadamard, rhs); err != nil {
		return nil, err
	}
	out := m.derive(m.r, m.c, m.shape)
	floats.MulTo(out.data, m.data, rhs.bufferIn(m.shape))

	return out, nil
}

// Kronecker returns m ⊗ rhs, a RowMajor (r1·r2) × (c1·c2) matrix with
// out[i1·r2+i2, j1·c2+j2] = m[i1,j1]·rhs[i2,j2].
// Errors: ErrNilMatrix.
// Complexity: O(r1·c1·r2·c2).
func (m *Dense) Kronecker(rhs *Dense) (*Dense, error) {
	if rhs == nil {
		return nil, matrixErrorf(opKronecker, ErrNilMatrix)
	}
	r2, c2 := rhs.r, rhs.c
	out := m.derive(m.r*r2, m.c*c2, RowMajor)
	var i1, j1, i2, j2, base int
	var av float64
	for i1 = 0; i1 < m.r; i1++ {
		for j1 = 0; j1 < m.c; j1++ {
			av = m.data[m.offset(i1, j1)]
			if av == 0 {
				continue // block stays zero
			}
			for i2 = 0; i2 < r2; i2++ {
				base = (i1*r2+i2)*out.c + j1*c2
				for j2 = 0; j2 < c2; j2++ {
					out.data[base+j2] = av * rhs.data[rhs.offset(i2, j2)]
				}
			}
		}
	}

	return out, nil
}

// Mul returns the matrix product m × rhs as a RowMajor matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch when m.Cols() != rhs.Rows().
// Complexity: O(r·n·c).
func (m *Dense) Mul(rhs *Dense) (*Dense, error) {
	if rhs == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if m.c != rhs.r {
		return nil, fmt.Errorf("%s: %dx%d × %dx%d: %w", opMul, m.r, m.c, rhs.r, rhs.c, ErrDimensionMismatch)
	}

	a := m.bufferIn(RowMajor)   // a[i*n + k]
	b := rhs.bufferIn(RowMajor) // b[k*cols + j]
	n, cols := m.c, rhs.c
	out := m.derive(m.r, cols, RowMajor)
	var i, k int
	var av float64
	for i = 0; i < m.r; i++ {
		row := out.data[i*cols : (i+1)*cols]
		for k = 0; k < n; k++ {
			av = a[i*n+k]
			if av == 0 {
				continue // skip zero for performance
			}
			floats.AddScaled(row, av, b[k*cols:(k+1)*cols])
		}
	}

	return out, nil
}

// Apply returns y = m·x, making Dense a linear operator Vec → Vec.
// Errors: ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r·c).
func (m *Dense) Apply(x Vec) (Vec, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	y := make(Vec, m.r)
	if m.shape == RowMajor {
		for i := 0; i < m.r; i++ {
			y[i] = floats.Dot(m.data[i*m.c:(i+1)*m.c], x)
		}
		return y, nil
	}
	// ColMajor: accumulate x[j]·column j
	for j := 0; j < m.c; j++ {
		if x[j] == 0 {
			continue
		}
		floats.AddScaled(y, x[j], m.data[j*m.r:(j+1)*m.r])
	}

	return y, nil
}
