// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column/row statistics over a Dense, treating rows as observations and
//     columns as variables.
//   - Means and centering are computed here; covariance and correlation are
//     delegated to gonum/stat on a gonum export (see conversions.go).
//
// Exposed API:
//   - ColMeans(X), RowMeans(X)   -> []float64
//   - CenterColumns(X)           -> (Xc, means)  // subtract per-column mean
//   - CenterRows(X)              -> (Xc, means)  // subtract per-row mean
//   - NormalizeRows(X, kind)     -> (Y, norms)   // zero-norm rows left unchanged
//   - Covariance(X)              -> Cov          // sample covariance, n−1 denominator
//   - Correlation(X)             -> Corr         // Pearson
//
// Determinism:
//   - Fixed i→j traversal; results keep X's Shape except Covariance and
//     Correlation, which are RowMajor.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	opColMeans      = "ColMeans"
	opRowMeans      = "RowMeans"
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
	opNormalizeRows = "NormalizeRows"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// ColMeans returns the arithmetic mean of every column. Columns of a 0-row
// matrix have mean 0.
// Errors: ErrNilMatrix.
func ColMeans(x Matrix) ([]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}
	d := asDense(x)
	means := make([]float64, d.c)
	if d.r == 0 {
		return means, nil
	}
	for j := range means {
		col, _ := d.Col(j) // j in range
		means[j] = stat.Mean(col, nil)
	}

	return means, nil
}

// RowMeans returns the arithmetic mean of every row. Rows of a 0-column
// matrix have mean 0.
// Errors: ErrNilMatrix.
func RowMeans(x Matrix) ([]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	d := asDense(x)
	means := make([]float64, d.r)
	if d.c == 0 {
		return means, nil
	}
	for i := range means {
		row, _ := d.Row(i) // i in range
		means[i] = stat.Mean(row, nil)
	}

	return means, nil
}

// CenterColumns returns X with each column's mean subtracted, plus the means.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func CenterColumns(x Matrix) (*Dense, []float64, error) {
	means, err := ColMeans(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d := asDense(x)
	out := d.derive(d.r, d.c, d.shape)
	var i, j, k int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			k = d.offset(i, j)
			out.data[k] = d.data[k] - means[j]
		}
	}

	return out, means, nil
}

// CenterRows returns X with each row's mean subtracted, plus the means.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func CenterRows(x Matrix) (*Dense, []float64, error) {
	means, err := RowMeans(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	d := asDense(x)
	out := d.derive(d.r, d.c, d.shape)
	var i, j, k int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			k = d.offset(i, j)
			out.data[k] = d.data[k] - means[i]
		}
	}

	return out, means, nil
}

// NormalizeRows scales each row to unit norm under a vector norm kind and
// returns the original row norms. Rows with zero norm are copied unchanged.
// Errors: ErrNilMatrix; ErrInvalidNorm/ErrUnsupportedNorm from the selector.
// Complexity: O(r*c).
func NormalizeRows(x Matrix, kind algebra.Norm) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRows, err)
	}
	d := asDense(x)
	out := d.derive(d.r, d.c, d.shape)
	norms := make([]float64, d.r)
	var i, j int
	for i = 0; i < d.r; i++ {
		row, _ := d.Row(i)
		n, err := row.Norm(kind)
		if err != nil {
			return nil, nil, matrixErrorf(opNormalizeRows, err)
		}
		norms[i] = n
		if n != 0 {
			row = row.MulScalar(1 / n)
		}
		for j = 0; j < d.c; j++ {
			out.data[out.offset(i, j)] = row[j]
		}
	}

	return out, norms, nil
}

// statInput validates X for column statistics: non-nil, at least two
// observations and one variable.
func statInput(tag string, x Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if x.Rows() < 2 || x.Cols() < 1 {
		return nil, fmt.Errorf("%s(%dx%d): need ≥2 rows and ≥1 column: %w", tag, x.Rows(), x.Cols(), ErrInvalidDimensions)
	}
	g, err := ToGonum(asDense(x))
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return g, nil
}

// Covariance returns the c×c sample covariance of the columns of X
// (denominator r−1), computed by gonum stat.CovarianceMatrix.
// Errors: ErrNilMatrix, ErrInvalidDimensions (fewer than 2 rows).
// Complexity: O(r*c²).
func Covariance(x Matrix) (*Dense, error) {
	g, err := statInput(opCovariance, x)
	if err != nil {
		return nil, err
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, g, nil)

	res, err := FromGonum(&cov)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	return res, nil
}

// Correlation returns the c×c Pearson correlation of the columns of X,
// computed by gonum stat.CorrelationMatrix.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf when a column has
// zero variance (its correlation is undefined).
// Complexity: O(r*c²).
func Correlation(x Matrix) (*Dense, error) {
	g, err := statInput(opCorrelation, x)
	if err != nil {
		return nil, err
	}
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, g, nil)

	res, err := FromGonum(&corr)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}

	return res, nil
}
