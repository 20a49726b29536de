// SPDX-License-Identifier: MIT
// Package matrix - column statistics.
//
// Purpose:
//   - Compute column means and the sample covariance of a data matrix
//     (rows = observations, columns = features).
//   - Compose canonical kernels (Transpose, Mul, Scale) instead of re-implementing loops.

package matrix

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// centerColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: Validate X (non-nil); zero-size input is a no-op.
//   - Stage 2: Accumulate column sums (Dense fast-path; At fallback), divide by r.
//   - Stage 3: Build the centered copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return X, means, nil
	}

	Xc, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += Xc.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			Xc.data[base+j] -= means[j]
		}
	}

	return Xc, means, nil
}

// covariance computes the sample covariance (Xcᵀ Xc)/(r-1).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r < 2 or c == 0.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
//
// Notes:
//   - Result is symmetric positive semi-definite on well-formed data (modulo rounding).
func covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 || c == 0 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
