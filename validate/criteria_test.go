// SPDX-License-Identifier: MIT

package validate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/validate"
)

func TestDefaultCriteria(t *testing.T) {
	c := validate.DefaultCriteria()
	assert.Equal(t, 0.7, c.Reliability.CronbachAlpha["threshold"])
	assert.Equal(t, 0.5, c.Reliability.AVE["threshold"])
	assert.Equal(t, 0.85, c.Validity.HTMT["threshold"])
	assert.Equal(t, 5.0, c.StructuralModel.VIF["threshold"])
	assert.Equal(t, 0.08, c.ModelFit.SRMR["threshold"])
	assert.Equal(t, validate.DefaultAlpha, c.Normality.PValue)
	assert.NotEmpty(t, c.References)

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"structural_model"`)
}

func TestCheckOverall_NilInputs(t *testing.T) {
	o := validate.CheckOverall(nil, nil)
	assert.False(t, o.Valid)
	assert.Len(t, o.Issues, 1)
}
