// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmetric/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{4, 3}, {2, 1}})

	for name, pair := range map[string][2]matrix.Matrix{
		"dense":    {a, b},
		"fallback": {hide{a}, b},
	} {
		t.Run(name, func(t *testing.T) {
			sum, err := matrix.Add(pair[0], pair[1])
			require.NoError(t, err)
			CompareExact(t, [][]float64{{5, 5}, {5, 5}}, sum)

			diff, err := matrix.Sub(pair[0], pair[1])
			require.NoError(t, err)
			CompareExact(t, [][]float64{{-3, -1}, {1, 3}}, diff)
		})
	}

	_, err := matrix.Sub(a, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{5, 6}, {7, 8}})
	want := [][]float64{{19, 22}, {43, 50}}

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, c)

	c, err = matrix.Product(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, want, c)

	_, err = matrix.Mul(a, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScale(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt)

	mt, err = matrix.T(hide{m})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt)

	s, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 4, 6}, {8, 10, 12}}, s)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVecVecMat(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	y, err = matrix.MatVecMul(hide{m}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	y, err = matrix.VecMat([]float64{1, 1}, m)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, y)

	y, err = matrix.VecMat([]float64{1, 1}, hide{m})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, y)

	_, err = matrix.MatVec(m, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.VecMat([]float64{1}, m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	t.Run("General", func(t *testing.T) {
		inv, err := matrix.Inverse(MustFrom(t, [][]float64{{4, 7}, {2, 6}}))
		require.NoError(t, err)
		CompareClose(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, 1e-12)
	})

	t.Run("NeedsPivot", func(t *testing.T) {
		inv, err := matrix.InverseOf(hide{MustFrom(t, [][]float64{{0, 1}, {1, 0}})})
		require.NoError(t, err)
		CompareClose(t, [][]float64{{0, 1}, {1, 0}}, inv, 1e-12)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		a := MustFrom(t, [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
		inv, err := matrix.Inverse(a)
		require.NoError(t, err)
		id, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		CompareClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id, 1e-12)
	})

	t.Run("Singular", func(t *testing.T) {
		_, err := matrix.Inverse(MustFrom(t, [][]float64{{1, 2}, {2, 4}}))
		require.ErrorIs(t, err, matrix.ErrSingular)
	})

	t.Run("Shape", func(t *testing.T) {
		_, err := matrix.Inverse(MustDense(t, 2, 3))
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		_, err = matrix.Inverse(matrix.NewEmpty())
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
}

func TestFacades(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	D, err := matrix.NewDiagonal([]float64{2, 1})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 0}, {0, 1}}, D)

	_, err = matrix.NewDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.ZerosLike(D)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, z)

	c := matrix.CloneMatrix(D)
	MustSet(t, c, 0, 0, 5)
	require.Equal(t, 2.0, MustAt(t, D, 0, 0))
}
