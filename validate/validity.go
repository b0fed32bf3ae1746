// SPDX-License-Identifier: MIT

package validate

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/semsynth/matrix"
)

// maxHTMT is the conservative HTMT threshold.
const maxHTMT = 0.85

func pairKey(a, b string) string { return a + "_vs_" + b }

// constructCorrelation returns the correlation matrix of the scored
// constructs. Degenerate inputs (fewer than two rows) give NaN entries.
func constructCorrelation(p *prepared, log zerolog.Logger) [][]float64 {
	k := len(p.names)
	out := make([][]float64, k)
	if k > 0 && p.n >= 2 {
		X, err := matrix.FromColumns(p.scores...)
		if err == nil {
			var c *matrix.Dense
			if c, _, _, err = matrix.Correlation(X); err == nil {
				return c.ToRows()
			}
		}
		log.Warn().Err(err).Msg("construct correlation failed")
	}
	for i := range out {
		out[i] = make([]float64, k)
		for j := range out[i] {
			out[i][j] = math.NaN()
		}
	}
	return out
}

// validity runs Fornell–Larcker, HTMT and cross-loadings.
func validity(p *prepared, rel map[string]Reliability, cm [][]float64) Validity {
	v := Validity{
		FornellLarcker:        make(map[string]FornellLarcker),
		HTMT:                  make(map[string]HTMT),
		CrossLoadings:         make(map[string]CrossLoading),
		ConstructCorrelations: make(map[string]map[string]float64, len(p.names)),
	}

	for i, a := range p.names {
		row := make(map[string]float64, len(p.names))
		for j, b := range p.names {
			r := cm[i][j]
			row[b] = r
			if i == j {
				continue
			}
			ave := rel[a].AVE
			v.FornellLarcker[pairKey(a, b)] = FornellLarcker{
				Correlation:        r,
				SquaredCorrelation: r * r,
				AVE:                ave,
				Valid:              r*r < ave,
			}
			if i < j {
				h := math.Abs(r)
				v.HTMT[pairKey(a, b)] = HTMT{HTMT: h, Valid: h < maxHTMT}
			}
		}
		v.ConstructCorrelations[a] = row
	}

	for _, items := range p.items {
		for _, item := range items {
			if _, done := v.CrossLoadings[item]; done {
				continue
			}
			v.CrossLoadings[item] = crossLoading(p, item)
		}
	}
	return v
}

// crossLoading correlates one item with every construct score. The item is
// valid when its own-construct loading beats every other construct.
func crossLoading(p *prepared, item string) CrossLoading {
	own := p.owner[item]
	cl := CrossLoading{Loadings: make(map[string]float64, len(p.names)), OwnConstruct: own}
	first := true
	for ci, name := range p.names {
		r := corr(p.cols[item], p.scores[ci])
		cl.Loadings[name] = r
		if name == own {
			cl.OwnLoading = r
			continue
		}
		if math.IsNaN(r) {
			continue
		}
		if first || r > cl.MaxCrossLoading {
			cl.MaxCrossLoading = r
			first = false
		}
	}
	cl.Valid = cl.OwnLoading > cl.MaxCrossLoading
	return cl
}
