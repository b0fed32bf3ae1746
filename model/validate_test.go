// SPDX-License-Identifier: MIT

package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/model"
)

func fields(t *testing.T, err error) []string {
	t.Helper()
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	out := make([]string, len(verr.Issues))
	for i, is := range verr.Issues {
		out[i] = is.Field
	}
	return out
}

func TestValidateRequest_Valid(t *testing.T) {
	req := &model.Request{
		SampleSize:  300,
		LikertScale: 7,
		AddNoise:    true,
		NoiseLevel:  0.05,
		Model:       *mediationModel(),
	}
	assert.NoError(t, model.ValidateRequest(req))
}

func TestValidateRequest_Bounds(t *testing.T) {
	m := mediationModel()
	m.Constructs[0].Items[0].Mean = 8
	m.Constructs[0].Items[1].Std = 0.05
	m.Constructs[1].Items[0].Skewness = 2.5
	m.Constructs[1].Items[1].Kurtosis = -3
	m.Paths[0].Beta = 1.5
	m.Constructs[2].Targets.AVE = 0.95

	req := &model.Request{SampleSize: 50, LikertScale: 11, NoiseLevel: 0.5, Model: *m}
	assert.Equal(t, []string{
		"sample_size",
		"likert_scale",
		"noise_level",
		"constructs[0].items[0].mean",
		"constructs[0].items[1].std",
		"constructs[1].items[0].skewness",
		"constructs[1].items[1].kurtosis",
		"constructs[2].target_ave",
		"paths[0].beta",
	}, fields(t, model.ValidateRequest(req)))
}

func TestValidateModel_Structure(t *testing.T) {
	m := mediationModel()
	m.Constructs = append(m.Constructs, model.Construct{Name: "Trust", Targets: m.Constructs[0].Targets})
	m.Constructs[1].Items[0].Name = "TR1"
	m.Paths = append(m.Paths, model.Path{From: "Trust", To: "Loyalty", Beta: 0.1})

	err := model.ValidateModel(m)
	assert.ErrorIs(t, err, model.ErrDuplicateConstruct)
	assert.ErrorIs(t, err, model.ErrDuplicateItem)
	assert.ErrorIs(t, err, model.ErrEmptyConstruct)
	assert.ErrorIs(t, err, model.ErrUnknownConstruct)
	assert.Contains(t, err.Error(), `paths[3].to: unknown construct "Loyalty"`)
}

func TestValidateModel_Demographics(t *testing.T) {
	m := mediationModel()
	m.Demographics = []model.Demographic{
		model.Categorical{Name: "Gender", Categories: []string{"M", "F"}, Probabilities: []float64{1}},
		model.Ordinal{Name: "Edu", Levels: nil},
		model.Numerical{Name: "Age", Min: 65, Max: 18},
		model.Categorical{Name: "Gender", Categories: []string{"x"}, Probabilities: []float64{-1}},
	}
	assert.Equal(t, []string{
		"demographic_variables[0].probabilities",
		"demographic_variables[1].levels",
		"demographic_variables[2].min",
		"demographic_variables[3].name",
		"demographic_variables[3].probabilities",
	}, fields(t, model.ValidateModel(m)))
}

func TestValidateModel_ReservedPrefix(t *testing.T) {
	m := mediationModel()
	m.Constructs[0].Items[0].Name = model.DemographicPrefix + "X"
	assert.Equal(t, []string{"constructs[0].items[0].name"}, fields(t, model.ValidateModel(m)))
}

func TestCheckPaths_NamesMissingConstruct(t *testing.T) {
	m := mediationModel()
	m.Paths = append(m.Paths, model.Path{From: "Ghost", To: "Trust"})
	err := m.CheckPaths()
	assert.ErrorIs(t, err, model.ErrUnknownConstruct)
	assert.Contains(t, err.Error(), `"Ghost"`)
}
