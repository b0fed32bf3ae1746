// SPDX-License-Identifier: MIT
// Package matrix - Cholesky factorization and positive-definiteness probe.
//
// Purpose:
//   - Factor a symmetric positive-definite matrix as A = L·Lᵀ (L lower-triangular).
//   - Offer IsPositiveDefinite as the canonical feasibility check used by the
//     nearest-PD projection and by callers that need a valid correlation matrix.
//
// Notes:
//   - Only the lower triangle of A is read, so a slightly asymmetric input
//     behaves like its lower-triangle reflection.

package matrix

import (
	"fmt"
	"math"
)

const opCholesky = "Cholesky"

// Cholesky returns the lower-triangular factor L with A = L·Lᵀ.
//
// Implementation:
//   - Stage 1: Validate square input.
//   - Stage 2: Cholesky–Banachiewicz, row by row; any non-positive (or NaN)
//     pivot aborts with ErrNotPositiveDefinite.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotPositiveDefinite (wrapped with "Cholesky").
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := m.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = m.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				// sum > 0 is false for NaN too, which is what we want.
				if !(sum > 0) {
					return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d: %w", i, ErrNotPositiveDefinite))
				}
				l.data[i*n+i] = math.Sqrt(sum)
			} else {
				l.data[i*n+j] = sum / l.data[j*n+j]
			}
		}
	}

	return l, nil
}

// IsPositiveDefinite reports whether a Cholesky factorization of m succeeds.
func IsPositiveDefinite(m *Dense) bool {
	_, err := Cholesky(m)

	return err == nil
}
