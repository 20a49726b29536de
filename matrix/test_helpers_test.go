// Package matrix_test: shared helpers for the matrix test-suite.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmetric/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to hide its concrete type and force the At/Set fallback.
type hide struct{ matrix.Matrix }

// MustDense creates a rows×cols Dense or fails the test.
func MustDense(tb testing.TB, rows, cols int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(tb, err)

	return m
}

// MustFrom builds a Dense from a row literal or fails the test.
func MustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v))
}

// CompareExact asserts m equals the want literal element by element.
func CompareExact(tb testing.TB, want [][]float64, m matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(tb, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(tb, want[i][j], MustAt(tb, m, i, j), "element [%d,%d]", i, j)
		}
	}
}

// CompareClose asserts m matches want within delta.
func CompareClose(tb testing.TB, want [][]float64, m matrix.Matrix, delta float64) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(tb, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDelta(tb, want[i][j], MustAt(tb, m, i, j), delta, "element [%d,%d]", i, j)
		}
	}
}

// raw is a foreign Matrix without a numeric policy: it stores NaN/Inf as given.
type raw [][]float64

func (r raw) Rows() int { return len(r) }
func (r raw) Cols() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}
func (r raw) At(i, j int) (float64, error) { return r[i][j], nil }
func (r raw) Set(i, j int, v float64) error {
	r[i][j] = v
	return nil
}
func (r raw) Clone() matrix.Matrix {
	cp := make(raw, len(r))
	for i := range r {
		cp[i] = append([]float64(nil), r[i]...)
	}
	return cp
}
