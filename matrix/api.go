// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns the square matrix with d on its diagonal.
// A diagonal weighting matrix turns the Mahalanobis distance into a
// per-feature weighted Euclidean distance.
// Errors: ErrInvalidDimensions for empty d; ErrNaNInf for non-finite entries.
func NewDiagonal(d []float64) (*Dense, error) {
	n := len(d)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = D.Set(i, i, d[i]); err != nil {
			return nil, err
		}
	}

	return D, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// Covariance computes sample covariance of columns: Cov = (Xcᵀ Xc)/(n-1).
// Returns Cov and column means. Rows are observations, columns are features.
//
// Notes:
//   - Requires r >= 2; else ErrDimensionMismatch.
//   - InverseOf(Covariance(X)) is the classic Mahalanobis weighting matrix.
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }

// CenterColumns returns Xc = X − mean(X, by columns) and the column means.
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }
