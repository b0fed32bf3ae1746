// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/matrix"
)

func TestCenterColumns(t *testing.T) {
	x := mustDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})
	xc, means, err := matrix.CenterColumns(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{5.5, 11, 16.5}, means)
	assert.Equal(t, [][]float64{{-4.5, -9, -13.5}, {4.5, 9, 13.5}}, xc.ToRows())
}

func TestCovariance(t *testing.T) {
	x, err := matrix.FromColumns([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	cov, means, err := matrix.Covariance(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, means)
	assert.InDelta(t, 1.0, mustAt(t, cov, 0, 0), 1e-12)
	assert.InDelta(t, 2.0, mustAt(t, cov, 0, 1), 1e-12)
	assert.InDelta(t, 4.0, mustAt(t, cov, 1, 1), 1e-12)

	_, _, err = matrix.Covariance(mustDense(t, 1, 2, []float64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrTooFewObservations)
}

func TestCorrelation_PerfectAndDegenerate(t *testing.T) {
	x, err := matrix.FromColumns(
		[]float64{1, 2, 3, 4},
		[]float64{3, 5, 7, 9}, // 2x+1
		[]float64{4, 3, 2, 1}, // reversed
		[]float64{5, 5, 5, 5}, // constant
	)
	require.NoError(t, err)

	corr, _, stds, err := matrix.Correlation(x)
	require.NoError(t, err)
	requireSymmetric(t, corr, 0)
	assert.InDelta(t, 1.0, mustAt(t, corr, 0, 1), 1e-12)
	assert.InDelta(t, -1.0, mustAt(t, corr, 0, 2), 1e-12)
	assert.Equal(t, 0.0, stds[3])
	for j := 0; j < 4; j++ {
		assert.Equal(t, 0.0, mustAt(t, corr, 3, j))
	}
	assert.Equal(t, 1.0, mustAt(t, corr, 0, 0))
}
