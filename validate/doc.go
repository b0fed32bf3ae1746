// SPDX-License-Identifier: MIT

// Package validate re-derives the SEM/PLS-SEM statistics of an item-level
// table and renders them into a Report.
//
// The report covers seven families:
//
//   - Normality per item: Kolmogorov–Smirnov, Shapiro–Wilk (n < 5000),
//     skewness and excess kurtosis.
//   - Reliability per construct: Cronbach's alpha, item loadings
//     (item/score correlations), composite reliability, AVE.
//   - Validity: Fornell–Larcker, HTMT, cross-loadings.
//   - Structural model: path coefficients with t/p, R², indirect and
//     total effects, moderation screening.
//   - Multicollinearity: construct VIF.
//   - Descriptive statistics per item.
//   - Model fit: GoF and SRMR.
//
// Construct scores are row means of the construct's items. Constructs whose
// item columns are not all present are skipped; rows with a missing value
// in any scored item are dropped for the construct-level families.
//
// Every float in the returned Report is finite: Validate runs Sanitize
// (NaN → 0, ±Inf → ±999) before returning.
//
//	rep, err := validate.Run(table, &m, validate.WithAlpha(0.05))
//	if err != nil { ... }
//	fmt.Println(rep.OverallValid)
//
// The package never imports the generator; it validates any table.
package validate
