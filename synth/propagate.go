// SPDX-License-Identifier: MIT

package synth

import "github.com/katalvlaran/semsynth/model"

// Blend weights of structural propagation and the damping applied to paths
// that are meant to come out non-significant.
const (
	blendKeep       = 0.7
	blendPush       = 0.3
	nonSignificance = 0.1
)

// constructScores returns the row mean of each construct's item columns.
// groups[c] lists the column indexes of construct c. A construct without
// items scores zero.
func constructScores(groups [][]int, cols [][]float64, n int) [][]float64 {
	scores := make([][]float64, len(groups))
	for c, g := range groups {
		s := make([]float64, n)
		if len(g) > 0 {
			for _, j := range g {
				for i, v := range cols[j] {
					s[i] += v
				}
			}
			k := float64(len(g))
			for i := range s {
				s[i] /= k
			}
		}
		scores[c] = s
	}
	return scores
}

// propagate pushes every path into the target construct's item columns,
// in path order: x ← 0.7·x + 0.3·β·score(from). Scores are computed once
// before the first path. Paths not flagged significant use β·0.1.
// Path endpoints must already be checked against the model.
func propagate(m *model.Model, groups [][]int, cols [][]float64, n int) {
	if len(m.Paths) == 0 {
		return
	}
	idx := m.Index()
	scores := constructScores(groups, cols, n)
	for _, p := range m.Paths {
		beta := p.Beta
		if !p.Significant {
			beta *= nonSignificance
		}
		from := scores[idx[p.From]]
		for _, j := range groups[idx[p.To]] {
			col := cols[j]
			for i := range col {
				col[i] = blendKeep*col[i] + blendPush*beta*from[i]
			}
		}
	}
}
