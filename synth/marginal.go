// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/semsynth/model"
)

// normalTolerance: items with |skew| and |kurtosis| both below it are drawn
// from a plain normal distribution.
const normalTolerance = 0.01

// powerCoefficients returns the approximate third-order power-transform
// coefficients y = b·z + c·z² + d·z³ (a = 0) for the given skew and excess
// kurtosis: c = skew/6, d = kurtosis/24, b = √(1 − c² − d²).
//
// Errors: ErrNumericDomain when 1 − c² − d² < 0.
func powerCoefficients(skew, kurt float64) (b, c, d float64, err error) {
	c = skew / 6
	d = kurt / 24
	r := 1 - c*c - d*d
	if r < 0 || math.IsNaN(r) {
		return 0, 0, 0, ErrNumericDomain
	}
	return math.Sqrt(r), c, d, nil
}

// drawItem draws n responses for it, clipped to [1, likert].
//
// Errors: ErrNumericDomain (wrapped with the item name).
func drawItem(rng *rand.Rand, it model.Item, n, likert int) ([]float64, error) {
	x := make([]float64, n)
	if math.Abs(it.Skewness) < normalTolerance && math.Abs(it.Kurtosis) < normalTolerance {
		for i := range x {
			x[i] = rng.NormFloat64()*it.Std + it.Mean
		}
	} else {
		b, c, d, err := powerCoefficients(it.Skewness, it.Kurtosis)
		if err != nil {
			return nil, fmt.Errorf("%w: item %q (skewness %g, kurtosis %g)", err, it.Name, it.Skewness, it.Kurtosis)
		}
		for i := range x {
			z := rng.NormFloat64()
			x[i] = b*z + c*z*z + d*z*z*z
		}
		standardize(x, it.Mean, it.Std)
	}
	clip(x, 1, float64(likert))
	return x, nil
}

// standardize rescales x in place to the given mean and (population)
// standard deviation. A constant x collapses to mean.
func standardize(x []float64, mean, std float64) {
	mu, sd := stat.PopMeanStdDev(x, nil)
	floats.AddConst(-mu, x)
	if sd > 0 {
		floats.Scale(std/sd, x)
	} else {
		floats.Scale(0, x)
	}
	floats.AddConst(mean, x)
}

func clip(x []float64, lo, hi float64) {
	for i, v := range x {
		x[i] = math.Min(math.Max(v, lo), hi)
	}
}
