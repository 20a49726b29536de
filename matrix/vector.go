// SPDX-License-Identifier: MIT

// Package matrix - dense vector helpers over []float64.
//
// Vectors are plain slices: the caller owns them and no helper here mutates
// its inputs. Length contracts are enforced with the same sentinels as the
// matrix kernels (ErrNilMatrix for nil, ErrDimensionMismatch for lengths).

package matrix

const (
	opSubVec   = "SubVec"
	opDot      = "Dot"
	opQuadForm = "QuadForm"
)

// SubVec returns a fresh vector d with d[i] = a[i] - b[i].
// Complexity: O(n) time and space.
func SubVec(a, b []float64) ([]float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opSubVec, err)
	}
	d := make([]float64, len(a))
	for i := range a {
		d[i] = a[i] - b[i]
	}

	return d, nil
}

// Dot returns the inner product aᵀb.
// Complexity: O(n), no allocations.
func Dot(a, b []float64) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// QuadForm evaluates the scalar quadratic form xᵀ·m·x.
//
// Implementation:
//   - Stage 1: m must be non-nil and square; len(x) must equal m.Cols().
//   - Stage 2: y = MatVec(m, x), then Dot(x, y).
//
// Behavior highlights:
//   - m is not required to be symmetric; the value equals xᵀ·((m+mᵀ)/2)·x.
//   - NaN/Inf in m or x propagate into the result unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^2), Space O(n) for the intermediate product.
func QuadForm(m Matrix, x []float64) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	y, err := MatVec(m, x)
	if err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	v, err := Dot(x, y)
	if err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}

	return v, nil
}
