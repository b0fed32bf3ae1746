// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/matrix"
)

func TestMul_KnownProduct(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, c.ToRows())

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddSubTranspose(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 2, 2, []float64{4, 3, 2, 1})

	s, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5, 5}, {5, 5}}, s.ToRows())

	d, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-3, -1}, {1, 3}}, d.ToRows())

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, tr.ToRows())
}

func TestMatVec(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigen_SymmetricTwoByTwo(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{2, 1, 1, 2})
	vals, vecs, err := matrix.EigenSym(a)
	require.NoError(t, err)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	assert.InDelta(t, 1.0, sorted[0], 1e-12)
	assert.InDelta(t, 3.0, sorted[1], 1e-12)

	// A·v = λ·v for every column of Q.
	for k := range vals {
		v, err := vecs.Col(k)
		require.NoError(t, err)
		av, err := matrix.MatVec(a, v)
		require.NoError(t, err)
		for i := range v {
			assert.InDelta(t, vals[k]*v[i], av[i], 1e-10)
		}
	}
}

func TestEigen_RejectsAsymmetric(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 0, 1})
	_, _, err := matrix.Eigen(a, 1e-12, 100)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestSymmetrizeAndNorm(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 4, 0, 1})
	s, err := matrix.Symmetrize(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {2, 1}}, s.ToRows())
	assert.InDelta(t, math.Sqrt(10), matrix.FrobeniusNorm(s), 1e-12)
	assert.Equal(t, 0.0, matrix.FrobeniusNorm(nil))
}
