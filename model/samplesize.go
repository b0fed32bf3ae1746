// SPDX-License-Identifier: MIT

package model

import "fmt"

// SampleSizeInput describes the study for RecommendSampleSize.
type SampleSizeInput struct {
	Constructs        int     `json:"n_constructs"`
	ItemsPerConstruct int     `json:"n_items_per_construct"`
	Power             float64 `json:"power"`
	EffectSize        string  `json:"effect_size"`
}

// SampleSizeAdvice is the rule-of-thumb recommendation.
type SampleSizeAdvice struct {
	Recommended int     `json:"recommended_sample_size"`
	Minimum     int     `json:"minimum_sample_size"`
	Optimal     float64 `json:"optimal_sample_size"`
	Rationale   string  `json:"rationale"`
}

// RecommendSampleSize applies the PLS-SEM "ten times" heuristic scaled by
// effect size (small 15×, medium 10×, large 7× items per construct) and a
// power floor (300 / 150 / 100). The minimum is max(100, 5·items) and the
// optimum 1.5× the recommendation.
//
// Errors: *ValidationError when constructs ∉ [2,20], items ∉ [3,10],
// power ∉ [0.7,0.95] or the effect size is unknown.
func RecommendSampleSize(in SampleSizeInput) (SampleSizeAdvice, error) {
	var is issues
	if in.Constructs < 2 || in.Constructs > 20 {
		is.add("n_constructs", "must be within [2, 20], got %d", in.Constructs)
	}
	if in.ItemsPerConstruct < 3 || in.ItemsPerConstruct > 10 {
		is.add("n_items_per_construct", "must be within [3, 10], got %d", in.ItemsPerConstruct)
	}
	is.inRange("power", in.Power, bound{0.7, 0.95})

	var multiplier, floor int
	switch in.EffectSize {
	case "small":
		multiplier, floor = 15, 300
	case "medium":
		multiplier, floor = 10, 150
	case "large":
		multiplier, floor = 7, 100
	default:
		is.add("effect_size", "must be small, medium or large, got %q", in.EffectSize)
	}
	if err := is.err(); err != nil {
		return SampleSizeAdvice{}, err
	}

	recommended := max(in.ItemsPerConstruct*multiplier, floor)
	return SampleSizeAdvice{
		Recommended: recommended,
		Minimum:     max(100, in.ItemsPerConstruct*5),
		Optimal:     float64(recommended) * 1.5,
		Rationale: fmt.Sprintf("Based on %d items per construct and %s effect size",
			in.ItemsPerConstruct, in.EffectSize),
	}, nil
}
