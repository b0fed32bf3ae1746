// SPDX-License-Identifier: MIT

package validate

import "math"

// maxSRMR is the conventional SRMR cut-off.
const maxSRMR = 0.08

// modelFit computes GoF from the reliability and R² families and SRMR from
// the item correlations.
func modelFit(p *prepared, rel map[string]Reliability, r2 map[string]RSquared, cm [][]float64) ModelFit {
	return ModelFit{GoF: goodnessOfFit(p.names, rel, r2), SRMR: srmr(p, rel, cm)}
}

// goodnessOfFit is √(mean AVE · mean R²) over the constructs in names; 0 /
// "Poor" when either family is empty.
func goodnessOfFit(names []string, rel map[string]Reliability, r2 map[string]RSquared) GoF {
	var ave, rs float64
	var na, nr int
	for _, name := range names {
		if r, ok := rel[name]; ok {
			ave += r.AVE
			na++
		}
		if r, ok := r2[name]; ok {
			rs += r.RSquared
			nr++
		}
	}
	if na == 0 || nr == 0 {
		return GoF{Value: 0, Interpretation: interpretGoF(0)}
	}
	gof := math.Sqrt(ave / float64(na) * rs / float64(nr))
	return GoF{Value: gof, Interpretation: interpretGoF(gof)}
}

// srmr compares the observed item correlations with those implied by the
// loadings: λi·λj within a construct, λi·λj·φ across constructs (φ is the
// construct correlation). Averaged over the off-diagonal pairs.
func srmr(p *prepared, rel map[string]Reliability, cm [][]float64) SRMR {
	type entry struct {
		col     []float64
		loading float64
		c       int
	}
	var items []entry
	for ci, name := range p.names {
		for _, item := range p.items[ci] {
			items = append(items, entry{col: p.cols[item], loading: rel[name].Loadings[item], c: ci})
		}
	}

	var sum float64
	var pairs int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			obs := corr(a.col, b.col)
			if math.IsNaN(obs) {
				continue
			}
			implied := a.loading * b.loading
			if a.c != b.c {
				phi := cm[a.c][b.c]
				if math.IsNaN(phi) {
					continue
				}
				implied *= phi
			}
			d := obs - implied
			sum += d * d
			pairs++
		}
	}
	if pairs == 0 {
		return SRMR{}
	}
	v := math.Sqrt(sum / float64(pairs))
	return SRMR{Value: v, Acceptable: v < maxSRMR}
}

