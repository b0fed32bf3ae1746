// SPDX-License-Identifier: MIT

package synth_test

import (
	"fmt"
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

func twoConstructModel(beta float64, significant bool) *model.Model {
	return &model.Model{
		Constructs: []model.Construct{construct("Trust", "TR", 3), construct("Satisfaction", "SA", 3)},
		Paths:      []model.Path{{From: "Trust", To: "Satisfaction", Beta: beta, Significant: significant}},
	}
}

// score returns the row mean of the named columns.
func score(t *testing.T, tb *dataset.Table, names ...string) []float64 {
	t.Helper()
	out := make([]float64, tb.Len())
	for _, name := range names {
		col, err := tb.Numeric(name)
		require.NoError(t, err)
		for i, v := range col {
			out[i] += v / float64(len(names))
		}
	}
	return out
}
