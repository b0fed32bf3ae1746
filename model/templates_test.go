// SPDX-License-Identifier: MIT

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/model"
)

func TestTemplates_AreValidModels(t *testing.T) {
	assert.Equal(t, []string{"CSR_Performance", "TAM", "TPB", "UTAUT"}, model.TemplateKeys())

	for _, tpl := range model.Templates() {
		t.Run(tpl.Key, func(t *testing.T) {
			require.NoError(t, model.ValidateModel(&tpl.Model))
			g, err := model.NewGraph(&tpl.Model)
			require.NoError(t, err)
			assert.Empty(t, model.DetectCycles(g))
			for _, c := range tpl.Model.Constructs {
				assert.Len(t, c.Items, 3)
			}
		})
	}
}

func TestLookupTemplate(t *testing.T) {
	tam, err := model.LookupTemplate("TAM")
	require.NoError(t, err)
	assert.Equal(t, "Technology Acceptance Model", tam.Name)
	assert.Equal(t, []string{"Perceived Usefulness", "Perceived Ease of Use", "Attitude", "Behavioral Intention"},
		tam.Model.ConstructNames())
	assert.Equal(t, []string{"PU1", "PU2", "PU3"}, tam.Model.Constructs[0].ItemNames())

	_, err = model.LookupTemplate("SERVQUAL")
	assert.ErrorIs(t, err, model.ErrUnknownTemplate)
}
