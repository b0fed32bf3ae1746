// SPDX-License-Identifier: MIT

package validate

import "github.com/rs/zerolog"

// VIF thresholds.
const (
	maxAcceptableVIF = 5.0
	maxGoodVIF       = 3.0
)

// collinearity regresses each scored construct on all the others:
// VIF = 1/max(1−R², ε), 999 when R² >= 0.9999, capped at 999.
func collinearity(p *prepared, log zerolog.Logger) map[string]VIF {
	out := make(map[string]VIF, len(p.names))
	if len(p.names) < 2 {
		return out
	}
	for ci, name := range p.names {
		xs := make([][]float64, 0, len(p.names)-1)
		for cj := range p.names {
			if cj != ci {
				xs = append(xs, p.scores[cj])
			}
		}
		fit, err := regress(p.scores[ci], xs...)
		if err != nil {
			log.Warn().Err(err).Str("construct", name).Msg("vif fit failed")
			continue
		}
		v := vifFromR2(fit.RSquared)
		out[name] = VIF{VIF: v, Acceptable: v < maxAcceptableVIF, Good: v < maxGoodVIF}
	}
	return out
}

func vifFromR2(r2 float64) float64 {
	if r2 >= saturatedR2 {
		return capSentinel
	}
	den := 1 - r2
	if !(den > epsilon) {
		den = epsilon
	}
	v := 1 / den
	if v > capSentinel {
		v = capSentinel
	}
	return v
}
