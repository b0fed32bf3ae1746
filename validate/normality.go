// SPDX-License-Identifier: MIT

package validate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normality thresholds and series limits.
const (
	maxAbsSkew       = 2.0
	maxAbsKurtosis   = 7.0
	shapiroWilkMaxN  = 5000
	shapiroWilkMinN  = 3
	ksConvergenceRel = 1e-3
	ksConvergenceSum = 1e-8
	ksMaxSeriesTerms = 100
)

// itemNormality runs the normality battery on the finite values of one item.
func itemNormality(x []float64, alpha float64) ItemNormality {
	var res ItemNormality
	d, p := kolmogorovSmirnov(x)
	res.KolmogorovSmirnov = TestResult{Statistic: ptr(d), PValue: ptr(p), Normal: ptr(p > alpha)}
	if len(x) >= shapiroWilkMinN && len(x) < shapiroWilkMaxN {
		w, pw := shapiroWilk(x)
		res.ShapiroWilk = TestResult{Statistic: ptr(w), PValue: ptr(pw), Normal: ptr(pw > alpha)}
	}
	res.Skewness, res.Kurtosis = shape(x)
	res.SkewnessAcceptable = math.Abs(res.Skewness) < maxAbsSkew
	res.KurtosisAcceptable = math.Abs(res.Kurtosis) < maxAbsKurtosis
	return res
}

// kolmogorovSmirnov tests x against N(mean(x), sd(x)) and returns the
// statistic D and the asymptotic p-value with Stephens' small-sample
// correction λ = (√n + 0.12 + 0.11/√n)·D. Constant or short input yields
// NaN for both.
func kolmogorovSmirnov(x []float64) (d, p float64) {
	n := len(x)
	mean, sd := stat.MeanStdDev(x, nil)
	if n < 2 || !(sd > 0) {
		return math.NaN(), math.NaN()
	}
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	dist := distuv.Normal{Mu: mean, Sigma: sd}
	fn := float64(n)
	for i, v := range s {
		f := dist.CDF(v)
		d = math.Max(d, math.Max(float64(i+1)/fn-f, f-float64(i)/fn))
	}
	sqrtN := math.Sqrt(fn)
	return d, kolmogorovQ((sqrtN + 0.12 + 0.11/sqrtN) * d)
}

// kolmogorovQ is the Kolmogorov survival function
// Q(λ) = 2 Σ_{j≥1} (−1)^{j−1} exp(−2 j² λ²). Returns 1 when the alternating
// series does not settle (λ → 0).
func kolmogorovQ(lambda float64) float64 {
	a2 := -2 * lambda * lambda
	fac, sum, prev := 2.0, 0.0, 0.0
	for j := 1; j <= ksMaxSeriesTerms; j++ {
		term := fac * math.Exp(a2*float64(j*j))
		sum += term
		if math.Abs(term) <= ksConvergenceRel*prev || math.Abs(term) <= ksConvergenceSum*sum {
			return clamp01(sum)
		}
		fac = -fac
		prev = math.Abs(term)
	}
	return 1
}

// Shapiro–Wilk coefficient polynomials (Royston 1995, AS R94).
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.5440, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

// poly evaluates c[0] + c[1]·x + c[2]·x² + …
func poly(c []float64, x float64) float64 {
	var r float64
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}

// shapiroWilk returns W and its p-value using Royston's approximation,
// valid for 3 <= n <= 5000. Constant input returns (1, 1).
func shapiroWilk(x []float64) (w, p float64) {
	n := len(x)
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	if s[n-1]-s[0] < 1e-19 {
		return 1, 1
	}

	half := n / 2
	a := make([]float64, half+1) // 1-based
	fn := float64(n)
	if n == 3 {
		a[1] = math.Sqrt(0.5)
	} else {
		m := make([]float64, half+1)
		var summ2 float64
		for i := 1; i <= half; i++ {
			m[i] = distuv.UnitNormal.Quantile((float64(i) - 0.375) / (fn + 0.25))
			summ2 += m[i] * m[i]
		}
		summ2 *= 2
		ssumm2 := math.Sqrt(summ2)
		rsn := 1 / math.Sqrt(fn)
		a1 := poly(swC1, rsn) - m[1]/ssumm2

		first := 2
		var fac float64
		if n > 5 {
			first = 3
			a2 := -m[2]/ssumm2 + poly(swC2, rsn)
			fac = math.Sqrt((summ2 - 2*m[1]*m[1] - 2*m[2]*m[2]) / (1 - 2*a1*a1 - 2*a2*a2))
			a[2] = a2
		} else {
			fac = math.Sqrt((summ2 - 2*m[1]*m[1]) / (1 - 2*a1*a1))
		}
		a[1] = a1
		for i := first; i <= half; i++ {
			a[i] = -m[i] / fac
		}
	}

	mean := stat.Mean(s, nil)
	var num, ss float64
	for i := 1; i <= half; i++ {
		num += a[i] * (s[n-i] - s[i-1])
	}
	for _, v := range s {
		ss += (v - mean) * (v - mean)
	}
	w = math.Min(num*num/ss, 1)

	if n == 3 {
		const sixOverPi, asinSqrt3Over4 = 6 / math.Pi, math.Pi / 3
		return w, clamp01(sixOverPi * (math.Asin(math.Sqrt(w)) - asinSqrt3Over4))
	}
	w1 := 1 - w
	if w1 <= 0 {
		return w, 1
	}
	y := math.Log(w1)
	var mu, sigma float64
	if n <= 11 {
		gamma := poly(swG, fn)
		if y >= gamma {
			return w, 0
		}
		y = -math.Log(gamma - y)
		mu = poly(swC3, fn)
		sigma = math.Exp(poly(swC4, fn))
	} else {
		ln := math.Log(fn)
		mu = poly(swC5, ln)
		sigma = math.Exp(poly(swC6, ln))
	}
	return w, 1 - distuv.UnitNormal.CDF((y-mu)/sigma)
}
