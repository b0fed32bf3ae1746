// SPDX-License-Identifier: MIT

package validate

import (
	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// describe summarizes the finite values of one item. x must be non-empty.
func describe(x []float64) Descriptive {
	mean, std := stat.MeanStdDev(x, nil)
	skew, kurt := shape(x)
	median, err := mstats.Median(mstats.Float64Data(x))
	if err != nil {
		median = mean
	}
	return Descriptive{
		Mean:     mean,
		Median:   median,
		Std:      std,
		Min:      floats.Min(x),
		Max:      floats.Max(x),
		Skewness: skew,
		Kurtosis: kurt,
	}
}
