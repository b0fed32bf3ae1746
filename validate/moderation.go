// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

// Moderation reporting thresholds on ΔR².
const (
	minR2Change         = 0.001
	significantR2Change = 0.01
)

// moderation screens every path X → Y against every other construct M that
// takes part in some path: ΔR² of Y ~ X + M + Xc·Mc over Y ~ X + M, with
// f² = ΔR²/(1 − R²with). Entries with ΔR² > 0.001 are kept, sorted by ΔR²
// descending (ties keep path/candidate order).
func moderation(p *prepared, log zerolog.Logger) []Moderation {
	out := make([]Moderation, 0)
	var candidates []string
	for _, c := range p.graph.InPaths() {
		if p.scored(c) {
			candidates = append(candidates, c)
		}
	}

	for _, path := range p.m.Paths {
		if !p.scored(path.From) || !p.scored(path.To) {
			continue
		}
		x, y := p.score(path.From), p.score(path.To)
		for _, mod := range candidates {
			if mod == path.From || mod == path.To {
				continue
			}
			m := p.score(mod)
			res, ok := interaction(x, m, y)
			if !ok {
				log.Debug().Str("independent", path.From).Str("moderator", mod).Msg("moderation fit failed")
				continue
			}
			if !(res.R2Change > minR2Change) {
				continue
			}
			res.Independent, res.Dependent, res.Moderator = path.From, path.To, mod
			verb := "may moderate"
			if res.Significant {
				verb = "moderates"
			}
			res.Interpretation = fmt.Sprintf("%s %s the relationship between %s and %s", mod, verb, path.From, path.To)
			out = append(out, res)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].R2Change > out[j].R2Change })
	return out
}

// interaction fits both models and fills the numeric fields of a
// Moderation.
func interaction(x, m, y []float64) (Moderation, bool) {
	mx, mm := stat.Mean(x, nil), stat.Mean(m, nil)
	xm := make([]float64, len(x))
	for i := range x {
		xm[i] = (x[i] - mx) * (m[i] - mm)
	}
	without, err := regress(y, x, m)
	if err != nil {
		return Moderation{}, false
	}
	with, err := regress(y, x, m, xm)
	if err != nil {
		return Moderation{}, false
	}

	dr2 := with.RSquared - without.RSquared
	var f2 float64
	if without.RSquared < saturatedR2 {
		if with.RSquared < saturatedR2 {
			f2 = dr2 / (1 - with.RSquared)
		} else {
			f2 = capSentinel
		}
	}
	f2 = clip(f2, 0, capSentinel)

	return Moderation{
		InteractionCoefficient: with.Coef[2],
		R2Change:               dr2,
		FSquared:               f2,
		EffectSize:             interpretFSquared(f2),
		Significant:            dr2 > significantR2Change,
	}, true
}
