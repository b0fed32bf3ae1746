// SPDX-License-Identifier: MIT

package validate

import (
	"github.com/katalvlaran/semsynth/dataset"
	"github.com/katalvlaran/semsynth/model"
)

const opValidate = "Validate"

// Validator computes Reports. It holds only configuration and is safe for
// concurrent use.
type Validator struct {
	cfg config
}

// New returns a Validator with alpha 0.05 and a silent logger.
func New(opts ...Option) *Validator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Validator{cfg: cfg}
}

// Run is shorthand for New(opts...).Validate(t, m).
func Run(t *dataset.Table, m *model.Model, opts ...Option) (*Report, error) {
	return New(opts...).Validate(t, m)
}

// Validate computes every family for t under m and returns a sanitized
// report. Statistical degeneracies (constant columns, saturated fits, too
// few rows) are numeric policy, not errors.
//
// Errors:
//   - ErrNilTable, ErrNilModel.
//   - model.ErrUnknownConstruct when a path names an undeclared construct.
func (v *Validator) Validate(t *dataset.Table, m *model.Model) (*Report, error) {
	if t == nil {
		return nil, validateErrorf(opValidate, ErrNilTable)
	}
	if m == nil {
		return nil, validateErrorf(opValidate, ErrNilModel)
	}
	log := v.cfg.log.With().Str("op", "validate").Logger()

	p, err := prepare(t, m, log)
	if err != nil {
		return nil, validateErrorf(opValidate, err)
	}
	log.Debug().Strs("constructs", p.names).Int("rows", p.n).Msg("constructs scored")

	rep := &Report{
		Normality:        make(map[string]ItemNormality),
		DescriptiveStats: make(map[string]Descriptive),
		Rows:             p.n,
	}
	names, vals := presentItems(t, m)
	for _, item := range names {
		x := vals[item]
		if len(x) == 0 {
			continue
		}
		rep.Normality[item] = itemNormality(x, v.cfg.alpha)
		rep.DescriptiveStats[item] = describe(x)
	}

	cm := constructCorrelation(p, log)
	rep.Reliability = reliability(p)
	rep.Validity = validity(p, rep.Reliability, cm)
	rep.StructuralModel = structural(p, v.cfg.alpha, log)
	rep.Multicollinearity = collinearity(p, log)
	rep.ModelFit = modelFit(p, rep.Reliability, rep.StructuralModel.RSquared, cm)

	overall := CheckOverall(rep, m)
	rep.OverallValid, rep.OverallIssues = overall.Valid, overall.Issues
	if !overall.Valid {
		log.Info().Int("issues", len(overall.Issues)).Msg("overall validity failed")
	}

	Sanitize(rep)
	return rep, nil
}
