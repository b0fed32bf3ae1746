// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
	"strings"
)

// Request bounds enforced at the boundary. The numeric packages assume
// callers have checked them.
const (
	MinSampleSize = 100
	MaxSampleSize = 10000
	MinLikert     = 3
	MaxLikert     = 10
	MaxNoiseLevel = 0.3
)

// Issue message prefixes that carry a sentinel.
const (
	msgUnknownConstruct   = "unknown construct"
	msgDuplicateConstruct = "duplicate construct"
	msgDuplicateItem      = "duplicate item"
	msgEmptyConstruct     = "construct has no items"
)

type bound struct{ lo, hi float64 }

var (
	itemMeanBound  = bound{1, 7}
	itemStdBound   = bound{0.1, 3}
	itemSkewBound  = bound{-2, 2}
	itemKurtBound  = bound{-2, 7}
	betaBound      = bound{-1, 1}
	targetAlpha    = bound{0.7, 0.95}
	targetCR       = bound{0.7, 0.95}
	targetAVE      = bound{0.5, 0.9}
	knownEffectSet = map[string]struct{}{"": {}, "small": {}, "medium": {}, "large": {}}
)

// issues accumulates validation problems in discovery order.
type issues []Issue

func (is *issues) add(field, format string, args ...any) {
	*is = append(*is, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (is *issues) addKind(kind error, field, msg string) {
	*is = append(*is, Issue{Field: field, Message: msg, kind: kind})
}

func (is *issues) inRange(field string, v float64, b bound) {
	if math.IsNaN(v) || v < b.lo || v > b.hi {
		is.add(field, "must be within [%g, %g], got %g", b.lo, b.hi, v)
	}
}

func (is issues) err() error {
	if len(is) == 0 {
		return nil
	}
	return &ValidationError{Issues: is}
}

// ValidateRequest checks the generation settings and the model. Every
// problem is collected; the result is nil or a *ValidationError.
func ValidateRequest(req *Request) error {
	var is issues
	if req == nil {
		is.add("request", "is required")
		return is.err()
	}
	if req.SampleSize < MinSampleSize || req.SampleSize > MaxSampleSize {
		is.add("sample_size", "must be within [%d, %d], got %d", MinSampleSize, MaxSampleSize, req.SampleSize)
	}
	if req.LikertScale < MinLikert || req.LikertScale > MaxLikert {
		is.add("likert_scale", "must be within [%d, %d], got %d", MinLikert, MaxLikert, req.LikertScale)
	}
	is.inRange("noise_level", req.NoiseLevel, bound{0, MaxNoiseLevel})
	validateModel(&req.Model, &is)
	return is.err()
}

// ValidateModel checks only the model: names, item and path bounds, path
// endpoints and demographic shapes.
func ValidateModel(m *Model) error {
	var is issues
	if m == nil {
		is.add("model", "is required")
		return is.err()
	}
	validateModel(m, &is)
	return is.err()
}

func validateModel(m *Model, is *issues) {
	if len(m.Constructs) == 0 {
		is.add("constructs", "at least one construct is required")
	}

	constructs := make(map[string]struct{}, len(m.Constructs))
	items := make(map[string]string)
	for ci := range m.Constructs {
		c := &m.Constructs[ci]
		field := fmt.Sprintf("constructs[%d]", ci)
		switch _, dup := constructs[c.Name]; {
		case strings.TrimSpace(c.Name) == "":
			is.add(field+".name", "is required")
		case dup:
			is.addKind(ErrDuplicateConstruct, field+".name", fmt.Sprintf("%s %q", msgDuplicateConstruct, c.Name))
		default:
			constructs[c.Name] = struct{}{}
		}
		if len(c.Items) == 0 {
			is.addKind(ErrEmptyConstruct, field+".items", fmt.Sprintf("%s (%q)", msgEmptyConstruct, c.Name))
		}
		is.inRange(field+".target_cronbach_alpha", c.Targets.CronbachAlpha, targetAlpha)
		is.inRange(field+".target_cr", c.Targets.CompositeReliability, targetCR)
		is.inRange(field+".target_ave", c.Targets.AVE, targetAVE)

		for ii, it := range c.Items {
			ifield := fmt.Sprintf("%s.items[%d]", field, ii)
			switch owner, dup := items[it.Name]; {
			case strings.TrimSpace(it.Name) == "":
				is.add(ifield+".name", "is required")
			case dup:
				is.addKind(ErrDuplicateItem, ifield+".name", fmt.Sprintf("%s %q (already in %q)", msgDuplicateItem, it.Name, owner))
			case strings.HasPrefix(it.Name, DemographicPrefix):
				is.add(ifield+".name", "must not start with reserved prefix %q", DemographicPrefix)
			default:
				items[it.Name] = c.Name
			}
			is.inRange(ifield+".mean", it.Mean, itemMeanBound)
			is.inRange(ifield+".std", it.Std, itemStdBound)
			is.inRange(ifield+".skewness", it.Skewness, itemSkewBound)
			is.inRange(ifield+".kurtosis", it.Kurtosis, itemKurtBound)
		}
	}

	for pi, p := range m.Paths {
		field := fmt.Sprintf("paths[%d]", pi)
		if _, ok := constructs[p.From]; !ok {
			is.addKind(ErrUnknownConstruct, field+".from", fmt.Sprintf("%s %q", msgUnknownConstruct, p.From))
		}
		if _, ok := constructs[p.To]; !ok {
			is.addKind(ErrUnknownConstruct, field+".to", fmt.Sprintf("%s %q", msgUnknownConstruct, p.To))
		}
		is.inRange(field+".beta", p.Beta, betaBound)
		if _, ok := knownEffectSet[p.EffectSize]; !ok {
			is.add(field+".effect_size", "must be small, medium or large, got %q", p.EffectSize)
		}
	}

	columns := make(map[string]struct{}, len(m.Demographics))
	for di, d := range m.Demographics {
		field := fmt.Sprintf("demographic_variables[%d]", di)
		if d == nil {
			is.add(field, "is required")
			continue
		}
		if strings.TrimSpace(d.VarName()) == "" {
			is.add(field+".name", "is required")
		} else if _, dup := columns[d.VarName()]; dup {
			is.add(field+".name", "duplicate demographic %q", d.VarName())
		} else {
			columns[d.VarName()] = struct{}{}
		}
		switch v := d.(type) {
		case Categorical:
			if len(v.Categories) == 0 {
				is.add(field+".categories", "at least one category is required")
			}
			validateProbabilities(field, v.Probabilities, len(v.Categories), is)
		case Ordinal:
			if len(v.Levels) == 0 {
				is.add(field+".levels", "at least one level is required")
			}
			validateProbabilities(field, v.Probabilities, len(v.Levels), is)
		case Numerical:
			if !(v.Min < v.Max) {
				is.add(field+".min", "must be below max (%g >= %g)", v.Min, v.Max)
			}
			if math.IsNaN(v.Std) || v.Std < 0 {
				is.add(field+".std", "must be non-negative, got %g", v.Std)
			}
		}
	}
}

func validateProbabilities(field string, probs []float64, n int, is *issues) {
	if probs == nil {
		return
	}
	if len(probs) != n {
		is.add(field+".probabilities", "expected %d values, got %d", n, len(probs))
		return
	}
	var sum float64
	for _, p := range probs {
		if math.IsNaN(p) || p < 0 {
			is.add(field+".probabilities", "must be non-negative, got %g", p)
			return
		}
		sum += p
	}
	if !(sum > 0) {
		is.add(field+".probabilities", "must not all be zero")
	}
}
