package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmetric/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubVecDot(t *testing.T) {
	d, err := matrix.SubVec([]float64{3, 4}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, d)

	v, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, v)

	_, err = matrix.SubVec([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Dot(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSubVecDoesNotAlias(t *testing.T) {
	a := []float64{1, 2}
	d, err := matrix.SubVec(a, []float64{0, 0})
	require.NoError(t, err)
	d[0] = 100
	assert.Equal(t, 1.0, a[0])
}

func TestQuadForm(t *testing.T) {
	tests := []struct {
		name string
		m    [][]float64
		x    []float64
		want float64
	}{
		{"Identity", [][]float64{{1, 0}, {0, 1}}, []float64{3, 4}, 25},
		{"Diagonal", [][]float64{{2, 0}, {0, 1}}, []float64{1, 1}, 3},
		{"Asymmetric", [][]float64{{1, 2}, {0, 1}}, []float64{1, 1}, 4},
		{"Zero", [][]float64{{5, 1}, {1, 5}}, []float64{0, 0}, 0},
		{"Indefinite", [][]float64{{1, 0}, {0, -1}}, []float64{0, 2}, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matrix.QuadForm(MustFrom(t, tt.m), tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestQuadFormErrors(t *testing.T) {
	_, err := matrix.QuadForm(MustDense(t, 2, 3), []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.QuadForm(MustDense(t, 2, 2), []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.QuadForm(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestQuadFormPropagatesNaN(t *testing.T) {
	got, err := matrix.QuadForm(MustFrom(t, [][]float64{{1}}), []float64{math.NaN()})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

// TestNonFinitePropagatesOnBothPaths: Dense kernels multiply zeros like the
// interface fallback does, so 0·Inf = NaN reaches the result either way.
func TestNonFinitePropagatesOnBothPaths(t *testing.T) {
	q := raw{{1, 0}, {0, math.Inf(1)}}
	x := []float64{1, 0}

	dq, err := matrix.ToDense(q)
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, dq, 1, 1), 1))

	foreign, err := matrix.QuadForm(q, x)
	require.NoError(t, err)
	dense, err := matrix.QuadForm(dq, x)
	require.NoError(t, err)
	require.True(t, math.IsNaN(foreign))
	require.True(t, math.IsNaN(dense))

	y, err := matrix.MatVec(dq, x)
	require.NoError(t, err)
	require.Equal(t, 1.0, y[0])
	require.True(t, math.IsNaN(y[1]))

	y, err = matrix.VecMat(x, dq)
	require.NoError(t, err)
	require.True(t, math.IsNaN(y[1]))

	p, err := matrix.Mul(MustFrom(t, [][]float64{{1, 0}}), dq)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, p, 0, 1)))
	p, err = matrix.Mul(hide{MustFrom(t, [][]float64{{1, 0}})}, q)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, p, 0, 1)))
}
