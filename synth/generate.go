// SPDX-License-Identifier: MIT

package synth

import (
	"math"

	"github.com/katalvlaran/semsynth/dataset"
	"github.com/katalvlaran/semsynth/model"
)

const opGenerate = "Generate"

// Generator synthesizes survey tables. It holds only its configuration, so
// one Generator may serve concurrent calls.
type Generator struct {
	cfg config
}

// New returns a Generator: Likert 7, noise 0.05, unseeded, silent.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{cfg: cfg}
}

// Generate is shorthand for New(opts...).Generate(m, n).
func Generate(m *model.Model, n int, opts ...Option) (*dataset.Table, error) {
	return New(opts...).Generate(m, n)
}

// Generate draws n respondents for m. Columns are the item names in
// construct order followed by one DEM_ column per demographic variable.
// Item columns hold integers in [1, L].
//
// Generate does not re-check the request bounds; run
// model.ValidateRequest first for untrusted input.
//
// Errors:
//   - ErrNilModel, ErrEmptyModel, ErrInvalidSampleSize.
//   - model.ErrUnknownConstruct naming the missing construct (before any draw).
//   - ErrNumericDomain naming the offending item.
//   - dataset.ErrDuplicateColumn when item or demographic names collide.
func (g *Generator) Generate(m *model.Model, n int) (*dataset.Table, error) {
	if n <= 0 {
		return nil, synthErrorf(opGenerate, ErrInvalidSampleSize)
	}
	names, corr, err := CorrelationStructure(m)
	if err != nil {
		return nil, err
	}
	log := g.cfg.log.With().Str("op", "generate").Logger()
	log.Debug().
		Int("rows", n).
		Strs("constructs", names).
		Int("paths", len(m.Paths)).
		Int("likert", g.cfg.likert).
		Msg("correlation structure ready")
	if log.Trace().Enabled() {
		log.Trace().Str("matrix", corr.String()).Msg("projected correlations")
	}
	if graph, gerr := model.NewGraph(m); gerr == nil {
		for _, cycle := range model.DetectCycles(graph) {
			log.Warn().Strs("cycle", cycle).Msg("path cycle; propagation applies it once in declaration order")
		}
	}

	rng := newRNG(g.cfg.seed)
	L := float64(g.cfg.likert)

	var (
		itemNames []string
		cols      [][]float64
		groups    = make([][]int, len(m.Constructs))
	)
	for ci := range m.Constructs {
		for _, it := range m.Constructs[ci].Items {
			x, derr := drawItem(rng, it, n, g.cfg.likert)
			if derr != nil {
				return nil, synthErrorf(opGenerate, derr)
			}
			groups[ci] = append(groups[ci], len(cols))
			itemNames = append(itemNames, it.Name)
			cols = append(cols, x)
		}
	}

	propagate(m, groups, cols, n)

	if g.cfg.noise && g.cfg.noiseLevel > 0 {
		sd := g.cfg.noiseLevel * L
		for _, col := range cols {
			for i := range col {
				col[i] += rng.NormFloat64() * sd
			}
		}
	}

	t := dataset.New(n)
	for j, col := range cols {
		for i, v := range col {
			col[i] = math.Round(math.Min(math.Max(v, 1), L))
		}
		if err = t.AddNumeric(itemNames[j], col); err != nil {
			return nil, synthErrorf(opGenerate, err)
		}
	}
	if err = addDemographics(rng, t, m.Demographics, n); err != nil {
		return nil, synthErrorf(opGenerate, err)
	}

	log.Debug().Int("items", len(cols)).Int("demographics", len(m.Demographics)).Msg("table generated")
	return t, nil
}
