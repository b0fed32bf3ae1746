// SPDX-License-Identifier: MIT

package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semsynth/dataset"
)

func TestTable_AddAndLookup(t *testing.T) {
	tb := dataset.New(3)
	require.NoError(t, tb.AddNumeric("Q1", []float64{1, 2, 3}))
	require.NoError(t, tb.AddLabels("DEM_Gender", []string{"M", "F", "M"}))

	assert.Equal(t, 3, tb.Len())
	assert.Equal(t, []string{"Q1", "DEM_Gender"}, tb.Columns())
	assert.True(t, tb.Has("Q1"))
	assert.True(t, tb.IsNumeric("Q1"))
	assert.False(t, tb.IsNumeric("DEM_Gender"))
	assert.False(t, tb.Has("Q2"))

	q1, err := tb.Numeric("Q1")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, q1)

	_, err = tb.Numeric("DEM_Gender")
	assert.ErrorIs(t, err, dataset.ErrNotNumeric)
	_, err = tb.Numeric("Q2")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

func TestTable_AddErrors(t *testing.T) {
	tb := dataset.New(2)
	require.NoError(t, tb.AddNumeric("A", []float64{1, 2}))
	assert.ErrorIs(t, tb.AddNumeric("A", []float64{3, 4}), dataset.ErrDuplicateColumn)
	assert.ErrorIs(t, tb.AddLabels("B", []string{"x"}), dataset.ErrLengthMismatch)
	assert.Equal(t, []string{"A"}, tb.Columns())
}

func TestTable_LabelsAndRecord(t *testing.T) {
	tb := dataset.New(2)
	require.NoError(t, tb.AddNumeric("A", []float64{1.5, math.NaN()}))
	require.NoError(t, tb.AddLabels("B", []string{"x", "y"}))

	labels, err := tb.Labels("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5", ""}, labels)

	rec := tb.Record(1)
	assert.Nil(t, rec["A"])
	assert.Equal(t, "y", rec["B"])
	assert.Equal(t, 1.5, tb.Record(0)["A"])
}
