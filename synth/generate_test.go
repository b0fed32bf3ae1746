// SPDX-License-Identifier: MIT

package synth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/semsynth/model"
	"github.com/katalvlaran/semsynth/synth"
)

func TestGenerate_BoundsAndColumns(t *testing.T) {
	tpl, err := model.LookupTemplate("TAM")
	require.NoError(t, err)
	m := tpl.Model
	m.Constructs[0].Items[0].Skewness = -1.2
	m.Constructs[0].Items[0].Kurtosis = 3
	m.Demographics = []model.Demographic{
		model.Categorical{Name: "Gender", Categories: []string{"Male", "Female"}},
		model.NewNumerical("Age", nil, nil, nil, nil),
	}

	for _, likert := range []int{3, 5, 7, 10} {
		tb, err := synth.Generate(&m, 250, synth.WithSeed(7), synth.WithLikertScale(likert), synth.WithNoise(0.3))
		require.NoError(t, err)
		assert.Equal(t, 250, tb.Len())

		want := append(m.ItemNames(), "DEM_Gender", "DEM_Age")
		assert.Equal(t, want, tb.Columns())

		for _, name := range m.ItemNames() {
			col, err := tb.Numeric(name)
			require.NoError(t, err)
			for _, v := range col {
				require.Equal(t, math.Round(v), v, name)
				require.GreaterOrEqual(t, v, 1.0, name)
				require.LessOrEqual(t, v, float64(likert), name)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	tpl, err := model.LookupTemplate("TPB")
	require.NoError(t, err)
	tpl.Model.Demographics = []model.Demographic{
		model.Ordinal{Name: "Income", Levels: []string{"low", "mid", "high"}},
	}

	a, err := synth.Generate(&tpl.Model, 300, synth.WithSeed(42))
	require.NoError(t, err)
	b, err := synth.New(synth.WithSeed(42)).Generate(&tpl.Model, 300)
	require.NoError(t, err)

	for _, name := range a.Columns() {
		ca, _ := a.Numeric(name)
		cb, _ := b.Numeric(name)
		require.Equal(t, ca, cb, name)
	}
}

func TestGenerate_UnseededDiffers(t *testing.T) {
	m := twoConstructModel(0.5, true)
	a, err := synth.Generate(m, 500)
	require.NoError(t, err)
	b, err := synth.Generate(m, 500)
	require.NoError(t, err)

	same := true
	for _, name := range m.ItemNames() {
		ca, _ := a.Numeric(name)
		cb, _ := b.Numeric(name)
		if !assert.ObjectsAreEqual(ca, cb) {
			same = false
		}
	}
	assert.False(t, same)
}

func TestGenerate_PathRaisesConstructCorrelation(t *testing.T) {
	corrFor := func(significant bool) float64 {
		tb, err := synth.Generate(twoConstructModel(0.9, significant), 3000, synth.WithSeed(3), synth.WithoutNoise())
		require.NoError(t, err)
		tr := score(t, tb, "TR1", "TR2", "TR3")
		sa := score(t, tb, "SA1", "SA2", "SA3")
		return stat.Correlation(tr, sa, nil)
	}

	sig, damped := corrFor(true), corrFor(false)
	assert.Greater(t, sig, 0.15)
	assert.Less(t, math.Abs(damped), 0.1)
	assert.Greater(t, sig, damped)
}

func TestGenerate_Errors(t *testing.T) {
	m := twoConstructModel(0.5, true)
	m.Paths = append(m.Paths, model.Path{From: "Trust", To: "Loyalty", Beta: 0.3})
	_, err := synth.Generate(m, 100, synth.WithSeed(1))
	require.ErrorIs(t, err, model.ErrUnknownConstruct)
	assert.Contains(t, err.Error(), `"Loyalty"`)

	_, err = synth.Generate(nil, 100)
	assert.ErrorIs(t, err, synth.ErrNilModel)

	_, err = synth.Generate(&model.Model{}, 100)
	assert.ErrorIs(t, err, synth.ErrEmptyModel)

	_, err = synth.Generate(twoConstructModel(0.5, true), 0)
	assert.ErrorIs(t, err, synth.ErrInvalidSampleSize)
}

func TestGenerate_PowerTransformDomain(t *testing.T) {
	m := twoConstructModel(0.5, true)
	m.Constructs[1].Items[2].Skewness = 6
	m.Constructs[1].Items[2].Kurtosis = 24

	_, err := synth.Generate(m, 100, synth.WithSeed(1))
	require.ErrorIs(t, err, synth.ErrNumericDomain)
	assert.Contains(t, err.Error(), `"SA3"`)
}

func TestGenerate_SkewedItemLeansTheRightWay(t *testing.T) {
	m := &model.Model{Constructs: []model.Construct{{
		Name: "C",
		Items: []model.Item{
			{Name: "POS", Mean: 4, Std: 1, Skewness: 2},
			{Name: "NEG", Mean: 4, Std: 1, Skewness: -2},
		},
	}}}
	tb, err := synth.Generate(m, 5000, synth.WithSeed(11), synth.WithoutNoise())
	require.NoError(t, err)

	pos, _ := tb.Numeric("POS")
	neg, _ := tb.Numeric("NEG")
	assert.Greater(t, stat.Skew(pos, nil), 0.0)
	assert.Less(t, stat.Skew(neg, nil), 0.0)
}

func TestGenerate_Demographics(t *testing.T) {
	m := twoConstructModel(0.3, true)
	m.Demographics = []model.Demographic{
		model.Categorical{Name: "Gender", Categories: []string{"Male", "Female", "Other"}, Probabilities: []float64{0, 1, 0}},
		model.Numerical{Name: "Age", Min: 20, Max: 30, Mean: 25, Std: 10},
		model.Ordinal{Name: "Education", Levels: []string{"HS", "BSc", "MSc", "PhD"}},
	}
	tb, err := synth.Generate(m, 400, synth.WithSeed(5))
	require.NoError(t, err)

	gender, err := tb.Labels("DEM_Gender")
	require.NoError(t, err)
	assert.False(t, tb.IsNumeric("DEM_Gender"))
	for _, g := range gender {
		require.Equal(t, "Female", g)
	}

	age, err := tb.Numeric("DEM_Age")
	require.NoError(t, err)
	for _, v := range age {
		require.Equal(t, math.Round(v), v)
		require.GreaterOrEqual(t, v, 20.0)
		require.LessOrEqual(t, v, 30.0)
	}

	edu, err := tb.Numeric("DEM_Education")
	require.NoError(t, err)
	seen := map[float64]bool{}
	for _, v := range edu {
		require.Contains(t, []float64{1, 2, 3, 4}, v)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestRequestOptions(t *testing.T) {
	seed := int64(9)
	req := &model.Request{LikertScale: 5, AddNoise: false, Seed: &seed, Model: *twoConstructModel(0.4, true)}

	a, err := synth.Generate(&req.Model, 120, synth.RequestOptions(req)...)
	require.NoError(t, err)
	b, err := synth.Generate(&req.Model, 120, synth.WithLikertScale(5), synth.WithoutNoise(), synth.WithSeed(9))
	require.NoError(t, err)

	for _, name := range a.Columns() {
		ca, _ := a.Numeric(name)
		cb, _ := b.Numeric(name)
		require.Equal(t, ca, cb, name)
		for _, v := range ca {
			require.LessOrEqual(t, v, 5.0)
		}
	}
	assert.Nil(t, synth.RequestOptions(nil))
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { synth.WithLikertScale(1) })
	assert.Panics(t, func() { synth.WithNoise(-0.1) })
	assert.Panics(t, func() { synth.WithNoise(math.NaN()) })
}
