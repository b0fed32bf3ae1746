// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/matrix"
)

// mustDense builds an r×c matrix from a row-major slice or fails the test.
func mustDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// mustAt reads m[i,j] or fails the test.
func mustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireSymmetric asserts |m[i,j]-m[j,i]| <= tol for all pairs.
func requireSymmetric(t *testing.T, m *matrix.Dense, tol float64) {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.InDelta(t, mustAt(t, m, i, j), mustAt(t, m, j, i), tol, "(%d,%d)", i, j)
		}
	}
}

// requireFinite asserts every entry of m is finite.
func requireFinite(t *testing.T, m *matrix.Dense) {
	t.Helper()
	for _, row := range m.ToRows() {
		for _, v := range row {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}
}
