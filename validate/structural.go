// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/distuv"
)

// Mediation labels.
const (
	fullNoDirect = "Full mediation (no direct path)"
	fullMed      = "Full mediation"
	partialMed   = "Partial mediation"

	// negligibleDirect is the |direct| below which mediation counts as full.
	negligibleDirect = 0.05
)

// structural runs path estimation, R², indirect/total effects and the
// moderation screen.
func structural(p *prepared, alpha float64, log zerolog.Logger) Structural {
	s := Structural{
		Paths:    pathEstimates(p, alpha),
		RSquared: rSquared(p, log),
	}
	s.IndirectEffects = indirectEffects(p, alpha)
	s.TotalEffects = totalEffects(p, s.IndirectEffects)
	s.ModerationAnalysis = moderation(p, log)
	return s
}

// pathEstimates uses the construct-score correlation as the path
// coefficient, with t = r·√((n−2)/(1−r²)) and a two-sided Student-t p-value.
// Paths whose endpoints are not scored are omitted.
func pathEstimates(p *prepared, alpha float64) []PathResult {
	out := make([]PathResult, 0, len(p.m.Paths))
	for _, path := range p.m.Paths {
		if !p.scored(path.From) || !p.scored(path.To) {
			continue
		}
		r := corr(p.score(path.From), p.score(path.To))
		t, pv := tTest(r, p.n)
		out = append(out, PathResult{
			From:                path.From,
			To:                  path.To,
			Beta:                r,
			TStatistic:          t,
			PValue:              pv,
			Significant:         pv < alpha,
			ExpectedSignificant: path.Significant,
		})
	}
	return out
}

// tTest converts a correlation into (t, p). |r| >= 0.9999 short-circuits to
// t = ±100, p = 0; an undefined r yields t = 0, p = 1.
func tTest(r float64, n int) (t, p float64) {
	switch {
	case math.IsNaN(r):
		return 0, 1
	case math.Abs(r) >= saturatedCorr:
		return math.Copysign(tCap, r), 0
	}
	df := float64(n - 2)
	if df <= 0 {
		return 0, 1
	}
	t = clip(r*math.Sqrt(df/math.Max(1-r*r, epsilon)), -tCap, tCap)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return t, 2 * (1 - dist.CDF(math.Abs(t)))
}

// rSquared regresses every endogenous scored construct on its distinct
// scored predictors.
func rSquared(p *prepared, log zerolog.Logger) map[string]RSquared {
	out := make(map[string]RSquared)
	for _, name := range p.names {
		var xs [][]float64
		for _, pred := range p.graph.Predecessors(name) {
			if p.scored(pred) {
				xs = append(xs, p.score(pred))
			}
		}
		if len(xs) == 0 {
			continue
		}
		fit, err := regress(p.score(name), xs...)
		if err != nil {
			log.Warn().Err(err).Str("construct", name).Msg("r-squared fit failed")
			continue
		}
		out[name] = RSquared{RSquared: fit.RSquared, Interpretation: interpretRSquared(fit.RSquared)}
	}
	return out
}

// indirectEffects enumerates every two-hop chain A → B → C (C ≠ A) in path
// order. The effect is βAB·βBC of the hypothesized betas, tested with the
// Sobel approximation SE = √(a²(1−b²)/n + b²(1−a²)/n).
func indirectEffects(p *prepared, alpha float64) []IndirectEffect {
	chains := p.graph.Chains()
	out := make([]IndirectEffect, 0, len(chains))
	n := float64(p.n)
	for _, ch := range chains {
		a, b := ch.First.Beta, ch.Second.Beta
		ind := a * b
		se := math.Sqrt(a*a*(1-b*b)/n + b*b*(1-a*a)/n)
		if !(se > epsilon) {
			se = epsilon
		}
		z := ind / se
		pv := math.Min(2*(1-distuv.UnitNormal.CDF(math.Abs(z))), 1)
		out = append(out, IndirectEffect{
			Path:                    fmt.Sprintf("%s → %s → %s", ch.From, ch.Mediator, ch.To),
			From:                    ch.From,
			Mediator:                ch.Mediator,
			To:                      ch.To,
			IndirectEffect:          ind,
			BetaAM:                  a,
			BetaMC:                  b,
			ZScore:                  clip(z, -zCap, zCap),
			PValue:                  pv,
			Significant:             pv < alpha,
			EstimatedIndirectEffect: estimatedIndirect(p, ch.From, ch.Mediator, ch.To),
		})
	}
	return out
}

// estimatedIndirect is a·b from the data: a = standardized A → M, b =
// standardized M in M + A → C.
func estimatedIndirect(p *prepared, from, mediator, to string) float64 {
	if !p.scored(from) || !p.scored(mediator) || !p.scored(to) {
		return math.NaN()
	}
	a := corr(p.score(from), p.score(mediator))
	b := standardizedCoef(0, p.score(to), p.score(mediator), p.score(from))
	return a * b
}

// totalEffects adds the declared direct path (0 when absent) to each chain
// and classifies the mediation. VAF is |indirect| / |total| · 100, so it
// exceeds 100 when the direct and indirect effects have opposite signs.
func totalEffects(p *prepared, indirect []IndirectEffect) []TotalEffect {
	out := make([]TotalEffect, 0, len(indirect))
	for _, ie := range indirect {
		var direct float64
		if edge, ok := p.graph.Edge(ie.From, ie.To); ok {
			direct = edge.Beta
		}
		total := direct + ie.IndirectEffect

		kind := partialMed
		switch {
		case direct == 0:
			kind = fullNoDirect
		case math.Abs(direct) < negligibleDirect || !p.graph.AnySignificantEdge(ie.From, ie.To):
			kind = fullMed
		}
		var vaf float64
		if total != 0 {
			vaf = math.Abs(ie.IndirectEffect) / math.Max(math.Abs(total), epsilon) * 100
		}

		est := math.NaN()
		if p.scored(ie.From) && p.scored(ie.Mediator) && p.scored(ie.To) {
			est = standardizedCoef(0, p.score(ie.To), p.score(ie.From), p.score(ie.Mediator))
		}
		out = append(out, TotalEffect{
			From:                  ie.From,
			To:                    ie.To,
			Mediator:              ie.Mediator,
			DirectEffect:          direct,
			IndirectEffect:        ie.IndirectEffect,
			TotalEffect:           total,
			MediationType:         kind,
			VarianceAccountedFor:  vaf,
			EstimatedDirectEffect: est,
		})
	}
	return out
}
