// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/dataset"
	"github.com/katalvlaran/semsynth/model"
)

const specYAML = `sample_size: 150
likert_scale: 5
random_seed: 11
constructs:
  - name: Trust
    items:
      - {name: TR1}
      - {name: TR2}
      - {name: TR3}
  - name: Satisfaction
    items:
      - {name: SA1}
      - {name: SA2, skewness: -0.5}
      - {name: SA3}
paths:
  - {from: Trust, to: Satisfaction, beta: 0.5}
demographic_variables:
  - {name: Gender, type: categorical, categories: [Male, Female]}
`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerate_TemplateToStdout(t *testing.T) {
	out, _, err := execute(t, "generate", "--template", "TAM", "-n", "120", "--seed", "1")
	require.NoError(t, err)

	tb, err := dataset.ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 120, tb.Len())
	assert.Len(t, tb.Columns(), 12)

	again, _, err := execute(t, "generate", "--template", "TAM", "-n", "120", "--seed", "1")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateThenValidate(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "model.yaml", specYAML)
	data := filepath.Join(dir, "data.json")
	report := filepath.Join(dir, "report.json")

	_, stderr, err := execute(t, "generate", "--spec", spec, "--out", data)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote 150 rows × 7 columns")

	raw, err := os.ReadFile(data)
	require.NoError(t, err)
	tb, err := dataset.ReadJSON(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []string{"TR1", "TR2", "TR3", "SA1", "SA2", "SA3", "DEM_Gender"}, tb.Columns())

	_, stderr, err = execute(t, "validate", "--spec", spec, "--data", data, "--out", report, "--alpha", "0.01")
	require.NoError(t, err)
	assert.Contains(t, stderr, "construct")
	assert.Contains(t, stderr, "overall:")

	raw, err = os.ReadFile(report)
	require.NoError(t, err)
	var env struct {
		RunID  string  `json:"run_id"`
		Alpha  float64 `json:"alpha"`
		Report struct {
			Rows        int                        `json:"rows_used"`
			Reliability map[string]json.RawMessage `json:"reliability"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	_, err = uuid.Parse(env.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 0.01, env.Alpha)
	assert.Equal(t, 150, env.Report.Rows)
	assert.Contains(t, env.Report.Reliability, "Trust")
	assert.Contains(t, env.Report.Reliability, "Satisfaction")
}

func TestValidate_ReadsStdin(t *testing.T) {
	csv, _, err := execute(t, "generate", "--template", "TPB", "-n", "100", "--seed", "4")
	require.NoError(t, err)

	cmd := newRootCmd()
	var out, errb bytes.Buffer
	cmd.SetIn(strings.NewReader(csv))
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs([]string{"--no-color", "validate", "--template", "TPB", "--summary=false"})
	require.NoError(t, cmd.Execute())
	assert.Empty(t, errb.String())
	assert.True(t, json.Valid(out.Bytes()))
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := execute(t, "generate")
	assert.ErrorIs(t, err, errNoModel)

	_, _, err = execute(t, "generate", "--template", "TAM", "-n", "10")
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, _, err = execute(t, "generate", "--template", "Nope")
	assert.ErrorIs(t, err, model.ErrUnknownTemplate)

	_, _, err = execute(t, "generate", "--template", "TAM", "--format", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, "--log-level", "loud", "criteria")
	assert.Error(t, err)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "semsynth.yaml", "sample_size: 110\nlog_level: error\nformat: json\n")

	out, _, err := execute(t, "--config", cfg, "generate", "--template", "TAM", "--seed", "2")
	require.NoError(t, err)
	tb, err := dataset.ReadJSON(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 110, tb.Len())

	t.Setenv("SEMSYNTH_SAMPLE_SIZE", "105")
	out, _, err = execute(t, "generate", "--template", "TAM", "--seed", "2")
	require.NoError(t, err)
	tb, err = dataset.ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 105, tb.Len())

	_, _, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"), "criteria")
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	out, _, err := execute(t, "preview", "--template", "TAM")
	require.NoError(t, err)

	var res struct {
		Matrix [][]float64 `json:"expected_correlation_matrix"`
		Order  []string    `json:"construct_order"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Order, 4)
	require.Len(t, res.Matrix, 4)
	for i := range res.Matrix {
		assert.InDelta(t, 1.0, res.Matrix[i][i], 1e-9)
	}
}

func TestCatalogCommands(t *testing.T) {
	out, _, err := execute(t, "sample-size", "--items", "5", "--effect", "medium")
	require.NoError(t, err)
	var advice model.SampleSizeAdvice
	require.NoError(t, json.Unmarshal([]byte(out), &advice))
	assert.Equal(t, 150, advice.Recommended)
	assert.Equal(t, 100, advice.Minimum)

	_, _, err = execute(t, "sample-size", "--effect", "huge")
	assert.Error(t, err)

	out, _, err = execute(t, "criteria")
	require.NoError(t, err)
	assert.Contains(t, out, `"references"`)

	out, _, err = execute(t, "templates")
	require.NoError(t, err)
	for _, k := range model.TemplateKeys() {
		assert.Contains(t, out, k)
	}

	out, _, err = execute(t, "templates", "UTAUT")
	require.NoError(t, err)
	var tpl model.Template
	require.NoError(t, json.Unmarshal([]byte(out), &tpl))
	assert.Equal(t, "UTAUT", tpl.Key)
}
