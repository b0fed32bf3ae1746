// SPDX-License-Identifier: MIT

package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/semsynth/model"
)

// blendFixture is three one-item constructs A, B and T over three rows.
func blendFixture(paths ...model.Path) (*model.Model, [][]int, [][]float64) {
	m := &model.Model{
		Constructs: []model.Construct{
			{Name: "A", Items: []model.Item{{Name: "A1"}}},
			{Name: "B", Items: []model.Item{{Name: "B1"}}},
			{Name: "T", Items: []model.Item{{Name: "T1"}}},
		},
		Paths: paths,
	}
	cols := [][]float64{
		{2, 4, 6},
		{1, 5, 3},
		{3, 3, 7},
	}
	return m, [][]int{{0}, {1}, {2}}, cols
}

func TestPropagate_TwoPathsIntoOneTarget(t *testing.T) {
	m, groups, cols := blendFixture(
		model.Path{From: "A", To: "T", Beta: 0.5, Significant: true},
		model.Path{From: "B", To: "T", Beta: 0.4, Significant: true},
	)
	a := append([]float64(nil), cols[0]...)
	b := append([]float64(nil), cols[1]...)
	x := append([]float64(nil), cols[2]...)

	propagate(m, groups, cols, 3)

	for i := range x {
		want := 0.49*x[i] + 0.21*0.5*a[i] + 0.3*0.4*b[i]
		assert.InDelta(t, want, cols[2][i], 1e-12, "row %d", i)
	}
	assert.Equal(t, a, cols[0])
	assert.Equal(t, b, cols[1])
}

func TestPropagate_PathOrderMatters(t *testing.T) {
	ab := []model.Path{
		{From: "A", To: "T", Beta: 0.5, Significant: true},
		{From: "B", To: "T", Beta: 0.4, Significant: true},
	}
	m1, g1, c1 := blendFixture(ab...)
	m2, g2, c2 := blendFixture(ab[1], ab[0])

	propagate(m1, g1, c1, 3)
	propagate(m2, g2, c2, 3)

	assert.NotEqual(t, c1[2], c2[2])
	x, a, b := 3.0, 2.0, 1.0
	assert.InDelta(t, 0.49*x+0.21*0.4*b+0.3*0.5*a, c2[2][0], 1e-12)
}

func TestPropagate_NonSignificantPathIsDamped(t *testing.T) {
	m, groups, cols := blendFixture(model.Path{From: "A", To: "T", Beta: 0.5, Significant: false})
	a := append([]float64(nil), cols[0]...)
	x := append([]float64(nil), cols[2]...)

	propagate(m, groups, cols, 3)

	for i := range x {
		assert.InDelta(t, 0.7*x[i]+0.3*0.05*a[i], cols[2][i], 1e-12, "row %d", i)
	}
}

func TestPropagate_ScoresTakenBeforeFirstPath(t *testing.T) {
	m, groups, cols := blendFixture(
		model.Path{From: "A", To: "B", Beta: 0.6, Significant: true},
		model.Path{From: "B", To: "T", Beta: 0.5, Significant: true},
	)
	b := append([]float64(nil), cols[1]...)
	x := append([]float64(nil), cols[2]...)

	propagate(m, groups, cols, 3)

	for i := range x {
		assert.InDelta(t, 0.7*x[i]+0.3*0.5*b[i], cols[2][i], 1e-12, "row %d", i)
	}
}

func TestPropagate_UsesItemMeanScore(t *testing.T) {
	m := &model.Model{
		Constructs: []model.Construct{
			{Name: "A", Items: []model.Item{{Name: "A1"}, {Name: "A2"}}},
			{Name: "T", Items: []model.Item{{Name: "T1"}, {Name: "T2"}}},
		},
		Paths: []model.Path{{From: "A", To: "T", Beta: 1, Significant: true}},
	}
	cols := [][]float64{{2, 6}, {4, 2}, {1, 1}, {5, 5}}

	propagate(m, [][]int{{0, 1}, {2, 3}}, cols, 2)

	assert.InDelta(t, 0.7*1+0.3*3, cols[2][0], 1e-12)
	assert.InDelta(t, 0.7*5+0.3*4, cols[3][1], 1e-12)
}
