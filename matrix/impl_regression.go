// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Ordinary least squares with an intercept, used for R², VIF and the
//     moderation interaction tests.
//
// Implementation:
//   - Work on centered data: S = cov(X), s = cov(X, y).
//   - Solve S·β = s with an eigen pseudo-inverse (eigenvalues below
//     rcond·λmax are treated as zero), so duplicated or perfectly collinear
//     predictors yield the minimum-norm solution instead of ErrSingular.
//   - intercept = ȳ − β·x̄; R² = 1 − SSres/SStot (0 when y is constant).

package matrix

import "fmt"

const (
	opFitOLS = "FitOLS"

	// pinvRCond is the relative eigenvalue cutoff of the pseudo-inverse.
	pinvRCond = 1e-10
)

// OLSFit holds the result of FitOLS.
type OLSFit struct {
	Coef      []float64 // slope per predictor column
	Intercept float64
	RSquared  float64
	SSRes     float64 // residual sum of squares
	SSTot     float64 // total sum of squares around ȳ
}

// FitOLS regresses y on the columns of X (plus an intercept).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(y) != X.Rows()),
//     ErrTooFewObservations (n<2), ErrMatrixEigenFailed (wrapped).
//
// Complexity:
//   - Time O(n*p² + p³), Space O(n*p + p²).
func FitOLS(X *Dense, y []float64) (*OLSFit, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}
	if err := ValidateVecLen(y, X.r); err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}
	n, p := X.r, X.c
	if n < 2 {
		return nil, matrixErrorf(opFitOLS, ErrTooFewObservations)
	}

	// Stage 1: center X and y.
	Xc, xMeans, err := CenterColumns(X)
	if err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}
	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)
	yc := make([]float64, n)
	for i, v := range y {
		yc[i] = v - yMean
	}

	// Stage 2: S = Xcᵀ Xc/(n-1), s = Xcᵀ yc/(n-1).
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}
	inv := 1.0 / float64(n-1)
	S, err := Scale(G, inv)
	if err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}
	s, err := MatVec(Xct, yc)
	if err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}
	for i := range s {
		s[i] *= inv
	}

	// Stage 3: β = S⁺ s.
	vals, vecs, err := EigenSym(S)
	if err != nil {
		return nil, matrixErrorf(opFitOLS, fmt.Errorf("%d predictors: %w", p, err))
	}
	var lmax float64
	for _, v := range vals {
		if v > lmax {
			lmax = v
		}
	}
	cut := pinvRCond * lmax
	Sinv, err := reconstruct(vals, vecs, func(l float64) float64 {
		if l > cut && l > 0 {
			return 1.0 / l
		}
		return 0
	})
	if err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}
	beta, err := MatVec(Sinv, s)
	if err != nil {
		return nil, matrixErrorf(opFitOLS, err)
	}

	// Stage 4: residuals and R².
	fit := &OLSFit{Coef: beta, Intercept: yMean}
	for j := 0; j < p; j++ {
		fit.Intercept -= beta[j] * xMeans[j]
	}
	var pred, res float64
	for i := 0; i < n; i++ {
		pred = 0
		base := i * p
		for j := 0; j < p; j++ {
			pred += Xc.data[base+j] * beta[j]
		}
		res = yc[i] - pred
		fit.SSRes += res * res
		fit.SSTot += yc[i] * yc[i]
	}
	if fit.SSTot > 0 {
		fit.RSquared = 1 - fit.SSRes/fit.SSTot
	}

	return fit, nil
}
