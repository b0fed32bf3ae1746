// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/semsynth/dataset"
	"github.com/katalvlaran/semsynth/model"
)

// addDemographics appends one column per demographic variable, in order.
// Categorical variables become label columns; numerical and ordinal ones
// are integer-valued numeric columns.
func addDemographics(rng *rand.Rand, t *dataset.Table, demos []model.Demographic, n int) error {
	for _, d := range demos {
		if d == nil {
			continue
		}
		name := model.ColumnName(d)
		var err error
		switch v := d.(type) {
		case model.Categorical:
			err = t.AddLabels(name, drawCategorical(rng, v, n))
		case model.Numerical:
			err = t.AddNumeric(name, drawNumerical(rng, v, n))
		case model.Ordinal:
			err = t.AddNumeric(name, drawOrdinal(rng, v, n))
		default:
			err = fmt.Errorf("%w %q", model.ErrUnknownDemographicKind, d.Kind())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func drawCategorical(rng *rand.Rand, v model.Categorical, n int) []string {
	out := make([]string, n)
	if len(v.Categories) == 0 {
		return out
	}
	w := newWeights(v.Probabilities, len(v.Categories))
	for i := range out {
		out[i] = v.Categories[w.draw(rng)]
	}
	return out
}

func drawNumerical(rng *rand.Rand, v model.Numerical, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := rng.NormFloat64()*v.Std + v.Mean
		out[i] = math.Round(math.Min(math.Max(x, v.Min), v.Max))
	}
	return out
}

// drawOrdinal draws codes 1..len(Levels).
func drawOrdinal(rng *rand.Rand, v model.Ordinal, n int) []float64 {
	out := make([]float64, n)
	if len(v.Levels) == 0 {
		return out
	}
	w := newWeights(v.Probabilities, len(v.Levels))
	for i := range out {
		out[i] = float64(w.draw(rng) + 1)
	}
	return out
}
