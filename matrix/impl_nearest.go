// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Project an arbitrary square "wish" matrix onto the positive-definite cone
//     (NearestPD) and renormalize a PD matrix into a correlation matrix
//     (ToCorrelation).
//
// Algorithm (Higham 1988, with the usual identity-shift repair):
//   1. B  = (A + Aᵀ)/2
//   2. B  = V Λ Vᵀ (Jacobi); H = V |Λ| Vᵀ is the symmetric polar factor of B.
//   3. A3 = sym((B + H)/2)
//   4. While Cholesky(A3) fails or λmin(A3) < floor:
//      A3 += I·(max(floor−λmin,0)·k² + spacing·k²), k++.
//
// The shift grows strictly with k, so the loop terminates; maxShiftRetries is
// only a backstop against non-finite input.

package matrix

import (
	"fmt"
	"math"
)

const (
	opNearestPD     = "NearestPD"
	opToCorrelation = "ToCorrelation"

	// maxShiftRetries caps the identity-shift repair loop.
	maxShiftRetries = 1000

	// pdFloorRel is the smallest eigenvalue (relative to ‖A‖_F) NearestPD
	// accepts, so the result survives a later diagonal rescaling.
	pdFloorRel = 1e-10
)

// NearestPD returns the positive-definite matrix nearest (Frobenius, to first
// order) to the symmetric part of m.
//
// Errors:
//   - ErrNonSquare / ErrNilMatrix for malformed input.
//   - ErrNaNInf when m holds non-finite entries.
//   - ErrMatrixEigenFailed if the Jacobi solver does not converge.
//   - ErrNotPositiveDefinite if the repair loop exhausts maxShiftRetries.
//
// Complexity:
//   - O(n³) per eigen solve; at most maxShiftRetries+1 solves.
func NearestPD(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}

	b, err := Symmetrize(m)
	if err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}
	vals, vecs, err := EigenSym(b)
	if err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}
	h, err := reconstruct(vals, vecs, math.Abs)
	if err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}
	a2, err := Add(b, h)
	if err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}
	a2, err = Scale(a2, 0.5)
	if err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}
	a3, err := Symmetrize(a2)
	if err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}
	norm := FrobeniusNorm(m)
	floor := pdFloorRel * math.Max(norm, 1)
	ok, mineig, err := clearsFloor(a3, floor)
	if err != nil {
		return nil, matrixErrorf(opNearestPD, err)
	}
	if ok {
		return a3, nil
	}

	spacing := math.Nextafter(norm, math.Inf(1)) - norm
	if spacing <= 0 {
		spacing = math.SmallestNonzeroFloat64
	}

	n := a3.r
	var k int
	var shift, kk float64
	for k = 1; k <= maxShiftRetries; k++ {
		kk = float64(k * k)
		shift = math.Max(floor-mineig, 0)*kk + spacing*kk
		for i := 0; i < n; i++ {
			a3.data[i*n+i] += shift
		}
		ok, mineig, err = clearsFloor(a3, floor)
		if err != nil {
			return nil, matrixErrorf(opNearestPD, err)
		}
		if ok {
			return a3, nil
		}
	}

	return nil, matrixErrorf(opNearestPD, fmt.Errorf("after %d shifts: %w", maxShiftRetries, ErrNotPositiveDefinite))
}

// ToCorrelation rescales a covariance-like matrix to unit diagonal:
// R[i,j] = S[i,j] / sqrt(S[i,i]·S[j,j]). The diagonal is set to exactly 1.
// Positive definiteness is preserved (congruence by a positive diagonal).
//
// Errors:
//   - ErrNonSquare / ErrNilMatrix, ErrNotPositiveDefinite when a diagonal entry is ≤ 0.
func ToCorrelation(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opToCorrelation, err)
	}
	n := m.r
	d := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		v := m.data[i*n+i]
		if !(v > 0) {
			return nil, matrixErrorf(opToCorrelation, ErrNotPositiveDefinite)
		}
		d[i] = math.Sqrt(v)
	}
	res := m.Clone()
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				res.data[i*n+j] = 1.0
				continue
			}
			res.data[i*n+j] = m.data[i*n+j] / (d[i] * d[j])
		}
	}

	return res, nil
}

// clearsFloor reports whether m factors by Cholesky and its smallest
// eigenvalue is at least floor. The smallest eigenvalue is returned either way.
func clearsFloor(m *Dense, floor float64) (bool, float64, error) {
	vals, _, err := EigenSym(m)
	if err != nil {
		return false, 0, err
	}
	mineig := vals[0]
	for _, v := range vals[1:] {
		if v < mineig {
			mineig = v
		}
	}

	return mineig >= floor && IsPositiveDefinite(m), mineig, nil
}

// reconstruct builds V·diag(f(λ))·Vᵀ from an eigen decomposition.
// Complexity: O(n³).
func reconstruct(vals []float64, vecs *Dense, f func(float64) float64) (*Dense, error) {
	n := len(vals)
	if vecs == nil || vecs.r != n || vecs.c != n {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j, k int
	var s float64
	fv := make([]float64, n)
	for k = 0; k < n; k++ {
		fv[k] = f(vals[k])
	}
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s = 0
			for k = 0; k < n; k++ {
				s += vecs.data[i*n+k] * fv[k] * vecs.data[j*n+k]
			}
			out.data[i*n+j], out.data[j*n+i] = s, s
		}
	}

	return out, nil
}
