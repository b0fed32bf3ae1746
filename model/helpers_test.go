// SPDX-License-Identifier: MIT

package model_test

import (
	"fmt"

	"github.com/katalvlaran/semsynth/model"
)

// construct builds a construct with k default items named prefix1..prefixk.
func construct(name, prefix string, k int) model.Construct {
	c := model.Construct{
		Name: name,
		Targets: model.Targets{
			CronbachAlpha:        model.DefaultTargetAlpha,
			CompositeReliability: model.DefaultTargetCR,
			AVE:                  model.DefaultTargetAVE,
		},
	}
	for i := 1; i <= k; i++ {
		c.Items = append(c.Items, model.Item{
			Name: fmt.Sprintf("%s%d", prefix, i),
			Mean: model.DefaultItemMean,
			Std:  model.DefaultItemStd,
		})
	}
	return c
}

// mediationModel is Trust → Quality → Satisfaction plus the direct path.
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
