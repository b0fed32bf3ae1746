// SPDX-License-Identifier: MIT

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/model"
)

func TestGraph_MediationChain(t *testing.T) {
	g, err := model.NewGraph(mediationModel())
	require.NoError(t, err)

	chains := g.Chains()
	require.Len(t, chains, 1)
	assert.Equal(t, "Trust", chains[0].From)
	assert.Equal(t, "Quality", chains[0].Mediator)
	assert.Equal(t, "Satisfaction", chains[0].To)
	assert.Equal(t, 0.5, chains[0].First.Beta)
	assert.Equal(t, 0.6, chains[0].Second.Beta)

	direct, ok := g.Edge("Trust", "Satisfaction")
	require.True(t, ok)
	assert.Equal(t, 0.2, direct.Beta)
	_, ok = g.Edge("Satisfaction", "Trust")
	assert.False(t, ok)

	assert.Equal(t, []string{"Quality", "Trust"}, g.Predecessors("Satisfaction"))
	assert.Equal(t, []string{"Quality", "Satisfaction"}, g.Endogenous())
	assert.Equal(t, []string{"Trust", "Quality", "Satisfaction"}, g.InPaths())
}

func TestGraph_ChainsSkipImmediateReturn(t *testing.T) {
	m := &model.Model{
		Constructs: []model.Construct{construct("A", "a", 1), construct("B", "b", 1)},
		Paths: []model.Path{
			{From: "A", To: "B", Beta: 0.3},
			{From: "B", To: "A", Beta: 0.3},
		},
	}
	g, err := model.NewGraph(m)
	require.NoError(t, err)
	assert.Empty(t, g.Chains())
}

func TestGraph_ParallelEdgesLastWins(t *testing.T) {
	m := &model.Model{
		Constructs: []model.Construct{construct("A", "a", 1), construct("B", "b", 1), construct("C", "c", 1)},
		Paths: []model.Path{
			{From: "A", To: "B", Beta: 0.1, Significant: false},
			{From: "A", To: "B", Beta: 0.4, Significant: true},
		},
	}
	g, err := model.NewGraph(m)
	require.NoError(t, err)
	p, ok := g.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, 0.4, p.Beta)
	assert.True(t, g.AnySignificantEdge("A", "B"))
	assert.Equal(t, []string{"A"}, g.Predecessors("B"))
	assert.Equal(t, []string{"A", "B"}, g.InPaths())
}

func TestNewGraph_UnknownConstruct(t *testing.T) {
	m := mediationModel()
	m.Paths[1].To = "Loyalty"
	_, err := model.NewGraph(m)
	assert.ErrorIs(t, err, model.ErrUnknownConstruct)
	assert.Contains(t, err.Error(), "Loyalty")
}
