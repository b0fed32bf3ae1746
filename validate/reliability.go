// SPDX-License-Identifier: MIT

package validate

import (
	"gonum.org/v1/gonum/stat"
)

// Reliability thresholds.
const (
	minAlpha = 0.7
	minCR    = 0.7
	minAVE   = 0.5
)

// reliability computes alpha, loadings, CR and AVE for every scored
// construct.
func reliability(p *prepared) map[string]Reliability {
	out := make(map[string]Reliability, len(p.names))
	for ci, name := range p.names {
		cols := make([][]float64, len(p.items[ci]))
		for j, item := range p.items[ci] {
			cols[j] = p.cols[item]
		}
		loadings := itemLoadings(cols, p.scores[ci])
		alpha := cronbachAlpha(cols, p.n)
		cr := compositeReliability(loadings)
		ave := averageVarianceExtracted(loadings)

		r := Reliability{
			CronbachAlpha:        alpha,
			CronbachAcceptable:   alpha >= minAlpha,
			CompositeReliability: cr,
			CRAcceptable:         cr >= minCR,
			AVE:                  ave,
			AVEAcceptable:        ave >= minAVE,
			Loadings:             make(map[string]float64, len(loadings)),
		}
		for j, item := range p.items[ci] {
			r.Loadings[item] = loadings[j]
		}
		out[name] = r
	}
	return out
}

// cronbachAlpha is (k/(k−1))·(1 − Σ var(item) / var(Σ items)), clamped to
// [0, 1]. Zero for fewer than two items; the total variance is floored at
// epsilon.
func cronbachAlpha(cols [][]float64, n int) float64 {
	k := len(cols)
	if k < 2 || n < 2 {
		return 0
	}
	total := make([]float64, n)
	var sumVar float64
	for _, col := range cols {
		sumVar += stat.Variance(col, nil)
		for i, v := range col {
			total[i] += v
		}
	}
	tv := stat.Variance(total, nil)
	if !(tv > epsilon) {
		tv = epsilon
	}
	kf := float64(k)
	return clamp01(kf / (kf - 1) * (1 - sumVar/tv))
}

// itemLoadings approximates loadings as each item's correlation with the
// construct score, floored at 0 (NaN counts as 0).
func itemLoadings(cols [][]float64, score []float64) []float64 {
	out := make([]float64, len(cols))
	for j, col := range cols {
		out[j] = clampLoading(corr(col, score))
	}
	return out
}

func clampLoading(r float64) float64 {
	if !(r > 0) {
		return 0
	}
	return r
}

// compositeReliability is (Σλ)² / ((Σλ)² + Σ(1−λ²)), clamped to [0, 1].
func compositeReliability(loadings []float64) float64 {
	var sum, errVar float64
	for _, l := range loadings {
		sum += l
		errVar += 1 - l*l
	}
	den := sum*sum + errVar
	if den == 0 {
		return 0
	}
	return clamp01(sum * sum / den)
}

// averageVarianceExtracted is mean(λ²), clamped to [0, 1].
func averageVarianceExtracted(loadings []float64) float64 {
	if len(loadings) == 0 {
		return 0
	}
	var s float64
	for _, l := range loadings {
		s += l * l
	}
	return clamp01(s / float64(len(loadings)))
}
