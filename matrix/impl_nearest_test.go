// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/matrix"
)

func TestNearestPD_AlreadyPositiveDefinite(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 0.3, 0.3, 1})
	p, err := matrix.NearestPD(a)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, mustAt(t, a, i, j), mustAt(t, p, i, j), 1e-10)
		}
	}
}

func TestNearestPD_ContradictoryCorrelations(t *testing.T) {
	cases := []struct {
		name string
		data []float64
	}{
		{"plus-plus-minus", []float64{
			1, 0.9, -0.9,
			0.9, 1, 0.9,
			-0.9, 0.9, 1,
		}},
		{"all-minus", []float64{
			1, -0.9, -0.9,
			-0.9, 1, -0.9,
			-0.9, -0.9, 1,
		}},
		{"asymmetric-input", []float64{
			1, 0.95, 0,
			-0.95, 1, 0.95,
			0.95, 0, 1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := mustDense(t, 3, 3, tc.data)

			p, err := matrix.NearestPD(raw)
			require.NoError(t, err)
			requireSymmetric(t, p, 1e-12)
			assert.True(t, matrix.IsPositiveDefinite(p))

			c, err := matrix.ToCorrelation(p)
			require.NoError(t, err)
			requireSymmetric(t, c, 1e-12)
			requireFinite(t, c)
			for i := 0; i < 3; i++ {
				assert.Equal(t, 1.0, mustAt(t, c, i, i))
			}
			_, err = matrix.Cholesky(c)
			assert.NoError(t, err)
		})
	}
}

func TestNearestPD_RejectsBadInput(t *testing.T) {
	nan := mustDense(t, 2, 2, []float64{1, math.NaN(), 0, 1})
	_, err := matrix.NearestPD(nan)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NearestPD(mustDense(t, 2, 3, make([]float64, 6)))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestToCorrelation_NonPositiveDiagonal(t *testing.T) {
	_, err := matrix.ToCorrelation(mustDense(t, 2, 2, []float64{0, 0, 0, 1}))
	assert.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}
