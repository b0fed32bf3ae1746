// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/matrix"
)

func TestCholesky_Reconstructs(t *testing.T) {
	a := mustDense(t, 3, 3, []float64{
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	})
	l, err := matrix.Cholesky(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 0, 0}, {6, 1, 0}, {-8, 5, 3}}, l.ToRows())

	lt, err := matrix.Transpose(l)
	require.NoError(t, err)
	back, err := matrix.Mul(l, lt)
	require.NoError(t, err)
	assert.Equal(t, a.ToRows(), back.ToRows())
}

func TestCholesky_NotPositiveDefinite(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 2, 1})
	_, err := matrix.Cholesky(a)
	assert.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
	assert.False(t, matrix.IsPositiveDefinite(a))

	_, err = matrix.Cholesky(mustDense(t, 2, 3, make([]float64, 6)))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
