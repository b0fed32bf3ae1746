// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics (centering, covariance, correlation) as
//     deterministic compositions over the canonical kernels (Mul/Transpose/Scale).
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)         // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)   -> (Corr, means, stds) // Pearson corr via z-scoring; std=0 → zeroed row/col
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops over the row-major buffer.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.r, X.c
	means := make([]float64, c)

	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	Xc := X.Clone()
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			Xc.data[base+j] -= means[j]
		}
	}

	return Xc, means, nil
}

// Covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
//
// Behavior highlights:
//   - Symmetric output; diagonal equals per-column sample variances.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewObservations (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrTooFewObservations)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(X.r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}

// Correlation computes the Pearson correlation of columns via z-scoring:
// Corr = (Zᵀ Z)/(r-1), where Z = (X − mean) * diag(1/std).
//
// Behavior highlights:
//   - Symmetric; diagonal is 1 for non-degenerate columns.
//   - Degenerate columns (std==0) become zero rows/columns, diagonal included,
//     instead of NaN.
//
// Returns:
//   - *Dense: Correlation (c×c).
//   - []float64: column means.
//   - []float64: column sample stds.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewObservations (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Correlation(X *Dense) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.r, X.c
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrTooFewObservations)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	// std[j] = sqrt( Σ_i Xc[i,j]^2 / (r-1) ).
	stds := make([]float64, c)
	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = Xc.data[base+j]
			stds[j] += v * v
		}
	}
	inv := 1.0 / float64(r-1)
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	// Z-score in place on the centered copy.
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			Xc.data[base+j] *= invStd[j]
		}
	}

	Zt, err := Transpose(Xc)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Xc)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Corr, err := Scale(G, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	// Pin the diagonal: 1 for live columns, 0 for degenerate ones.
	for j = 0; j < c; j++ {
		if stds[j] > 0 {
			Corr.data[j*c+j] = 1.0
		} else {
			Corr.data[j*c+j] = 0.0
		}
	}

	return Corr, means, stds, nil
}
