// SPDX-License-Identifier: MIT

// Package synth generates synthetic Likert-scale survey data from a
// construct/path model.
//
// A Generate call runs six stages:
//
//  1. Correlation structure: construct-by-construct matrix seeded with the
//     path betas and projected onto a valid correlation matrix
//     (matrix.NearestPD, matrix.ToCorrelation).
//  2. Item marginals: a normal draw, or a third-order power transform of a
//     normal draw when the item asks for skew or excess kurtosis, then
//     standardized to the item's mean/std and clipped to [1, L].
//  3. Structural propagation: every item of a path's target construct is
//     blended 70/30 with beta times the source construct score. Paths are
//     applied in declaration order against scores taken before the first
//     path; the result depends on that order.
//  4. Noise: N(0, level·L) per item column, when enabled.
//  5. Boundaries: clip to [1, L] and round to integers.
//  6. Demographics: one DEM_-prefixed column per variable, drawn
//     independently of the items.
//
// Determinism: WithSeed makes the output bit-identical for identical input.
// Without it every call draws a fresh seed. Each call owns its random
// stream, so a Generator is safe for concurrent use.
//
//	tpl, _ := model.LookupTemplate("TAM")
//	table, err := synth.Generate(&tpl.Model, 300, synth.WithSeed(42))
package synth
