// Package lvlalg is a small numerical linear-algebra core: a dense float64
// matrix with an explicit physical layout, the algebraic capability contracts
// it implements, and MATLAB/R-like constructors for sequences and matrices.
//
// The code is organized under three subpackages:
//
//	algebra/ - Norm selector, Vector/Normed/InnerProduct/LinearOp/VectorProduct/
//	           MatrixProduct contracts, Scalar, generic helpers (Sum, Distance, Cosine)
//	matrix/  - Shape (RowMajor, ColMajor), Dense, Vec, Zeros/Eye/Rand, Cbind/Rbind,
//	           products, norms, decompositions (LU, QR, Eigen), column statistics,
//	           gonum interop
//	builder/ - Seq, Linspace, Logspace (+ precision variants), Concat, Cat, Round
//
// Quick example:
//
//	a, _ := matrix.ZerosShape(2, 2, matrix.ColMajor)
//	b, _ := matrix.Eye(2)
//	c, _ := matrix.Cbind(a, b) // 2×4, ColMajor
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
