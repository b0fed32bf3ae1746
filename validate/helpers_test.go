// SPDX-License-Identifier: MIT

package validate_test

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/dataset"
	"github.com/katalvlaran/semsynth/model"
)

func construct(name, prefix string, k int) model.Construct {
	c := model.Construct{Name: name}
	for i := 1; i <= k; i++ {
		c.Items = append(c.Items, model.Item{Name: fmt.Sprintf("%s%d", prefix, i), Mean: 4, Std: 1})
	}
	return c
}

// mediationModel is Trust → Quality → Satisfaction with a direct
// Trust → Satisfaction path.
func mediationModel() *model.Model {
	return &model.Model{
		Constructs: []model.Construct{
			construct("Trust", "TR", 3),
			construct("Quality", "QU", 3),
			construct("Satisfaction", "SA", 3),
		},
		Paths: []model.Path{
			{From: "Trust", To: "Quality", Beta: 0.5, Significant: true},
			{From: "Quality", To: "Satisfaction", Beta: 0.6, Significant: true},
			{From: "Trust", To: "Satisfaction", Beta: 0.2, Significant: true},
		},
	}
}

// randomTable fills the given columns with independent uniform integers in
// [1, 7].
func randomTable(t *testing.T, seed int64, n int, names ...string) *dataset.Table {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	tb := dataset.New(n)
	for _, name := range names {
		col := make([]float64, n)
		for i := range col {
			col[i] = float64(1 + rng.Intn(7))
		}
		require.NoError(t, tb.AddNumeric(name, col))
	}
	return tb
}

// requireFiniteTree fails on any NaN or Inf float reachable from v.
func requireFiniteTree(t *testing.T, v reflect.Value, path string) {
	t.Helper()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		require.False(t, math.IsNaN(f) || math.IsInf(f, 0), "non-finite value at %s", path)
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			requireFiniteTree(t, v.Elem(), path)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			requireFiniteTree(t, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			requireFiniteTree(t, v.Index(i), fmt.Sprintf("%s[%d]", path, i))
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			requireFiniteTree(t, iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key()))
		}
	}
}
