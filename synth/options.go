// SPDX-License-Identifier: MIT

package synth

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/semsynth/model"
)

// Option customizes a Generator. Option constructors panic on meaningless
// values; Generate itself never panics.
type Option func(*config)

type config struct {
	seed       *int64
	likert     int
	noise      bool
	noiseLevel float64
	log        zerolog.Logger
}

func defaultConfig() config {
	return config{
		likert:     model.DefaultLikertScale,
		noise:      true,
		noiseLevel: model.DefaultNoiseLevel,
		log:        zerolog.Nop(),
	}
}

// WithSeed fixes the random stream; identical input then yields a
// bit-identical table. Zero is a valid seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		s := seed
		c.seed = &s
	}
}

// WithLikertScale sets the upper scale bound L (the lower bound is 1).
// Panics when L < 2.
func WithLikertScale(l int) Option {
	if l < 2 {
		panic("synth: WithLikertScale requires L >= 2")
	}
	return func(c *config) { c.likert = l }
}

// WithNoise enables response noise with standard deviation level·L.
// Panics on a negative or non-finite level.
func WithNoise(level float64) Option {
	if level < 0 || math.IsNaN(level) || math.IsInf(level, 0) {
		panic("synth: WithNoise requires a finite level >= 0")
	}
	return func(c *config) {
		c.noise = true
		c.noiseLevel = level
	}
}

// WithoutNoise disables response noise.
func WithoutNoise() Option {
	return func(c *config) { c.noise = false }
}

// WithLogger routes generator diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// RequestOptions translates the generation settings of a decoded request.
// Out-of-range settings are expected to be rejected earlier by
// model.ValidateRequest.
func RequestOptions(req *model.Request) []Option {
	if req == nil {
		return nil
	}
	opts := []Option{WithLikertScale(max(req.LikertScale, 2))}
	if req.AddNoise {
		opts = append(opts, WithNoise(math.Max(req.NoiseLevel, 0)))
	} else {
		opts = append(opts, WithoutNoise())
	}
	if req.Seed != nil {
		opts = append(opts, WithSeed(*req.Seed))
	}
	return opts
}
