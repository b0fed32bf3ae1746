// SPDX-License-Identifier: MIT

package validate

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/semsynth/matrix"
)

// Numeric guards shared by the families.
const (
	epsilon       = 1e-10
	saturatedR2   = 0.9999
	capSentinel   = 999.0
	tCap          = 100.0
	zCap          = 100.0
	saturatedCorr = 0.9999
)

// corr is the Pearson correlation of x and y, NaN when either is constant
// or shorter than two values.
func corr(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return math.NaN()
	}
	_, sx := stat.MeanStdDev(x, nil)
	_, sy := stat.MeanStdDev(y, nil)
	if !(sx > 0) || !(sy > 0) {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// clamp01 bounds v to [0, 1]; NaN maps to 0.
func clamp01(v float64) float64 {
	switch {
	case !(v > 0):
		return 0
	case v > 1:
		return 1
	}
	return v
}

func clip(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Min(math.Max(v, lo), hi)
}

// regress fits y on xs with an intercept.
func regress(y []float64, xs ...[]float64) (*matrix.OLSFit, error) {
	X, err := matrix.FromColumns(xs...)
	if err != nil {
		return nil, err
	}
	return matrix.FitOLS(X, y)
}

// standardizedCoef returns the standardized coefficient of xs[k] in the
// regression of y on xs, NaN when the fit fails or y is constant.
func standardizedCoef(k int, y []float64, xs ...[]float64) float64 {
	fit, err := regress(y, xs...)
	if err != nil {
		return math.NaN()
	}
	sy := stat.StdDev(y, nil)
	if !(sy > 0) {
		return math.NaN()
	}
	return fit.Coef[k] * stat.StdDev(xs[k], nil) / sy
}

func interpretRSquared(r2 float64) string {
	switch {
	case r2 >= 0.75:
		return "Substantial"
	case r2 >= 0.50:
		return "Moderate"
	case r2 >= 0.25:
		return "Weak"
	}
	return "Very Weak"
}

func interpretGoF(gof float64) string {
	switch {
	case gof >= 0.36:
		return "Large"
	case gof >= 0.25:
		return "Medium"
	case gof >= 0.10:
		return "Small"
	}
	return "Poor"
}

func interpretFSquared(f2 float64) string {
	switch {
	case f2 >= 0.35:
		return "Large"
	case f2 >= 0.15:
		return "Medium"
	case f2 >= 0.02:
		return "Small"
	}
	return "None"
}

// shape returns the population skewness and excess kurtosis of x, the
// biased moment ratios m3/m2^1.5 and m4/m2² − 3. Constant or empty input
// yields NaN for both.
func shape(x []float64) (skew, kurt float64) {
	m2 := stat.Moment(2, x, nil)
	if !(m2 > 0) {
		return math.NaN(), math.NaN()
	}
	skew = stat.Moment(3, x, nil) / math.Pow(m2, 1.5)
	kurt = stat.Moment(4, x, nil)/(m2*m2) - 3
	return skew, kurt
}

func ptr[T any](v T) *T { return &v }
