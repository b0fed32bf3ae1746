// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra toolkit used by the
// survey generator and validator.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with error-returning accessors.
//   - Canonical kernels: Add, Sub, Mul, Transpose, Scale, MatVec.
//   - Spectral and factorization routines: Eigen (cyclic-pivot Jacobi for
//     symmetric input) and Cholesky.
//   - NearestPD / ToCorrelation for turning an arbitrary symmetric "wish"
//     matrix into a valid correlation matrix.
//   - Column statistics: CenterColumns, Covariance, Correlation.
//   - OLS regression with intercept (FitOLS) backed by an eigen
//     pseudo-inverse, so rank-deficient designs still produce an R².
//
// All routines are deterministic (fixed loop orders, no map iteration) and
// return package sentinel errors wrapped with an operation tag; nothing
// panics on user-supplied data.
//
//	corr, _ := matrix.NewIdentity(3)
//	_ = corr.Set(0, 1, 0.9)
//	_ = corr.Set(1, 0, 0.9)
//	pd, _ := matrix.NearestPD(corr)
//	ok := matrix.IsPositiveDefinite(pd)
package matrix
