// SPDX-License-Identifier: MIT

// Package matrix provides a dense float64 matrix with an explicit physical
// layout, the kernels that operate on it, and MATLAB/R-like constructors.
//
// A Dense owns a flat buffer plus (rows, cols, Shape). Shape is RowMajor or
// ColMajor and decides one thing only: the offset formula used by the single
// indexing routine every operation goes through. The logical matrix is the
// same under both layouts, so:
//
//   - ChangeShape converts the buffer (full O(r·c) copy) without changing any
//     At(i, j) result; converting twice restores the original buffer.
//   - Cbind normalizes both operands to ColMajor and appends buffers; Rbind
//     does the same in RowMajor. Inputs are never modified.
//   - Norms, products and comparisons give identical results whatever the
//     layouts of their operands.
//
// Dense and Vec implement the capability contracts of package algebra
// (Vector → Normed → InnerProduct, LinearOp, VectorProduct, MatrixProduct).
//
// Errors are package sentinels (errors.go) wrapped with call-site context;
// match them with errors.Is. No exported function panics on user input;
// Option constructors panic on nonsensical values.
//
// Interop: ToGonum/FromGonum convert to and from gonum's mat package, which
// also backs the spectral (L2) norm.
package matrix
