// SPDX-License-Identifier: MIT

// Package matrix - square-matrix factorizations and solvers.
//
// Purpose:
//   - LU (Doolittle, unit-lower L, no pivoting) and Householder QR.
//   - Det, Solve and Inverse over a partially pivoted LU, so permutation-only
//     singularities (a zero leading entry) are not reported as singular.
//   - Eigen for symmetric matrices via cyclic-max Jacobi rotations.
//
// Layout policy:
//   - Inputs of any Shape (or any Matrix implementation) are first copied into
//     a RowMajor working buffer; inputs are never mutated.
//   - Results are RowMajor and inherit the input's numeric policy.
//
// Determinism:
//   - Fixed loop orders; the pivot search breaks ties by the lowest index.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opLU      = "LU"
	opQR      = "QR"
	opDet     = "Det"
	opSolve   = "Solve"
	opInverse = "Inverse"
	opEigen   = "Eigen"
)

// squareWork validates m (non-nil, square) and returns a RowMajor working copy.
func squareWork(tag string, m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return asDense(m).AsShape(RowMajor), nil
}

// LU computes the Doolittle factorization A = L·U with a unit diagonal on L.
// No pivoting is performed, so a zero leading minor fails even when A is
// invertible; use Solve/Inverse/Det for pivoted solving.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrSingular on a zero pivot.
//
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix) (Matrix, Matrix, error) {
	a, err := squareWork(opLU, m)
	if err != nil {
		return nil, nil, err
	}

	n := a.r
	l := a.derive(n, n, RowMajor)
	u := a.derive(n, n, RowMajor)
	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		l.data[i*n+i] = 1
	}
	for i = 0; i < n; i++ {
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = a.data[i*n+j] - sum
		}

		pivot = u.data[i*n+i]
		if pivot == 0 {
			return nil, nil, fmt.Errorf("%s: pivot %d: %w", opLU, i, ErrSingular)
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// pivotedLU factors the RowMajor n×n buffer a in place into P·A = L·U with
// partial pivoting; L (unit diagonal, implicit) sits below the diagonal and U
// on and above it. perm[i] is the original row now at position i.
// ok is false when a column has no non-zero pivot candidate.
func pivotedLU(a []float64, n int) (perm []int, sign float64, ok bool) {
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1

	var i, j, k, p int
	var maxAbs, v, piv, f float64
	for k = 0; k < n; k++ {
		p, maxAbs = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs == 0 {
			return perm, 0, false
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		piv = a[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / piv
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			floats.AddScaled(a[i*n+k+1:(i+1)*n], -f, a[k*n+k+1:(k+1)*n])
		}
	}

	return perm, sign, true
}

// luSolve solves L·U·x = P·b for a buffer produced by pivotedLU.
func luSolve(a []float64, n int, perm []int, b []float64) []float64 {
	x := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		x[i] = b[perm[i]]
	}
	// forward: unit-lower L
	for i = 0; i < n; i++ {
		x[i] -= floats.Dot(a[i*n:i*n+i], x[:i])
	}
	// backward: U
	for i = n - 1; i >= 0; i-- {
		x[i] = (x[i] - floats.Dot(a[i*n+i+1:(i+1)*n], x[i+1:])) / a[i*n+i]
	}

	return x
}

// Det returns the determinant of a square matrix. A singular matrix yields 0
// without error; the 0×0 matrix has determinant 1.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n³), Space O(n²).
func Det(m Matrix) (float64, error) {
	a, err := squareWork(opDet, m)
	if err != nil {
		return 0, err
	}
	_, sign, ok := pivotedLU(a.data, a.r)
	if !ok {
		return 0, nil
	}
	det := sign
	for i := 0; i < a.r; i++ {
		det *= a.data[i*a.r+i]
	}

	return det, nil
}

// Solve returns x with m·x = b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square or len(b) != n),
// ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Solve(m Matrix, b []float64) ([]float64, error) {
	a, err := squareWork(opSolve, m)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	perm, _, ok := pivotedLU(a.data, a.r)
	if !ok {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	return luSolve(a.data, a.r, perm, b), nil
}

// Inverse returns m⁻¹, solving m·x = e_k for every unit column e_k on one
// pivoted factorization.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix) (Matrix, error) {
	a, err := squareWork(opInverse, m)
	if err != nil {
		return nil, err
	}
	n := a.r
	perm, _, ok := pivotedLU(a.data, n)
	if !ok {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv := a.derive(n, n, RowMajor)
	e := make([]float64, n)
	var i, col int
	for col = 0; col < n; col++ {
		e[col] = 1
		x := luSolve(a.data, n, perm, e)
		e[col] = 0
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// QR computes a Householder factorization A = Q·R with Q orthogonal and R
// upper triangular. Columns that are already zero below the diagonal are
// skipped.
//
// Implementation:
//   - Stage 1: R starts as a RowMajor copy of A, Qᵀ as the identity.
//   - Stage 2: for each column k build v = x − α·e_k with α = −sign(x_k)·‖x‖
//     and apply H = I − 2·v·vᵀ/(vᵀv) to both R and Qᵀ.
//   - Stage 3: clear the sub-diagonal residue of R and return Q = (Qᵀ)ᵀ.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n³), Space O(n²).
func QR(m Matrix) (Matrix, Matrix, error) {
	r, err := squareWork(opQR, m)
	if err != nil {
		return nil, nil, err
	}

	n := r.r
	qt := r.derive(n, n, RowMajor)
	for i := 0; i < n; i++ {
		qt.data[i*n+i] = 1
	}

	v := make([]float64, n)
	var i, j, k int
	var norm, alpha, beta, tau, sum float64
	for k = 0; k < n; k++ {
		norm = 0
		for i = k; i < n; i++ {
			norm += r.data[i*n+k] * r.data[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column
		}
		alpha = -math.Copysign(norm, r.data[k*n+k])

		for i = 0; i < k; i++ {
			v[i] = 0
		}
		for i = k; i < n; i++ {
			v[i] = r.data[i*n+k]
		}
		v[k] -= alpha

		beta = floats.Dot(v[k:], v[k:])
		if beta == 0 {
			continue
		}
		tau = 2 / beta

		// R ← H·R
		for j = k; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * r.data[i*n+j]
			}
			for i = k; i < n; i++ {
				r.data[i*n+j] -= tau * v[i] * sum
			}
		}
		// Qᵀ ← H·Qᵀ
		for j = 0; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * qt.data[i*n+j]
			}
			for i = k; i < n; i++ {
				qt.data[i*n+j] -= tau * v[i] * sum
			}
		}
	}

	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			r.data[i*n+j] = 0
		}
	}

	return qt.Transpose(), r, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix with
// Jacobi rotations: each sweep annihilates the largest off-diagonal entry
// until every off-diagonal magnitude is below tol.
//
// Returns the eigenvalues in diagonal order (unsorted) and a RowMajor matrix
// whose column k is the unit eigenvector for values[k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrAsymmetry when |m[i,j] − m[j,i]| > tol for some pair.
//   - ErrEigenFailed when maxIter rotations do not reach tol.
//
// Complexity: O(n²) per rotation for the pivot search and update.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a := asDense(m).AsShape(RowMajor)
	n := a.r
	q := a.derive(n, n, RowMajor)
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var (
		i, j, p, r, iter   int
		maxOff, off        float64
		app, arr, apr      float64
		theta, t, c, s     float64
		aip, air, qip, qir float64
	)
	converged := false
	for iter = 0; iter <= maxIter; iter++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(a.data[i*n+j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol || maxOff == 0 {
			converged = true
			break
		}
		if iter == maxIter {
			break // budget spent
		}

		app, arr, apr = a.data[p*n+p], a.data[r*n+r], a.data[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = a.data[i*n+p], a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip, qir = q.data[i*n+p], q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("%s: off-diagonal %g after %d rotations: %w", opEigen, maxOff, maxIter, ErrEigenFailed)
	}

	return a.Diag(), q, nil
}
