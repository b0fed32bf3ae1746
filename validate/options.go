// SPDX-License-Identifier: MIT

package validate

import (
	"math"

	"github.com/rs/zerolog"
)

// DefaultAlpha is the significance level used when WithAlpha is not given.
const DefaultAlpha = 0.05

// Option customizes a Validator. Constructors panic on meaningless values.
type Option func(*config)

type config struct {
	alpha float64
	log   zerolog.Logger
}

func defaultConfig() config {
	return config{alpha: DefaultAlpha, log: zerolog.Nop()}
}

// WithAlpha sets the significance level for the normality flags, path
// significance and the Sobel test. Panics unless 0 < alpha < 1.
func WithAlpha(alpha float64) Option {
	if !(alpha > 0 && alpha < 1) || math.IsNaN(alpha) {
		panic("validate: WithAlpha requires 0 < alpha < 1")
	}
	return func(c *config) { c.alpha = alpha }
}

// WithLogger routes validator diagnostics (skipped constructs, dropped
// rows, failed fits) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}
