// Package matrix is the small linear-algebra toolkit behind lvmetric.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over 2-D float64 storage, and Dense,
//     its row-major implementation (including the legal 0×0 "empty" matrix).
//   - ReadOnly, a view that hands out a matrix without a mutation path.
//   - Kernels that never mutate their inputs: Add, Sub, Scale, Transpose, Mul,
//     MatVec, VecMat, Inverse.
//   - Vector helpers on []float64: SubVec, Dot, QuadForm (xᵀ·A·x).
//   - Column statistics: Covariance.
//
// Every failure is one of the sentinel errors in errors.go, wrapped with the
// name of the operation that detected it:
//
//	_, err := matrix.MatVec(q, x)
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//		// len(x) != q.Cols()
//	}
//
// Kernels take a fast path over the flat buffer when operands are *Dense and fall
// back to At/Set for any other Matrix implementation.
package matrix
