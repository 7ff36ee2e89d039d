package stats

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edakit/edakit/dataset"
)

func TestCorrelationMatrix(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"x", "y", "z"},
		{"1", "2", "5"},
		{"2", "4", "4"},
		{"3", "6", "3"},
		{"4", "8", "2"},
	},
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	require.NoError(t, df.Error())
	ds := dataset.New(df, "corr")

	labels, m, err := CorrelationMatrix(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, labels)

	// y = 2x, z = 6-x
	assert.InDelta(t, 1.0, m.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, m.At(0, 1), 1e-9)
	assert.InDelta(t, -1.0, m.At(0, 2), 1e-9)
}

func TestCorrelationMatrixPairwiseComplete(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"x", "y"},
		{"1", "1"},
		{"2", ""},
		{"3", "3"},
		{"4", "5"},
	},
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues([]string{""}),
	)
	require.NoError(t, df.Error())
	ds := dataset.New(df, "corr")

	_, m, err := CorrelationMatrix(ds)
	require.NoError(t, err)

	// computed over the three complete pairs only
	assert.False(t, math.IsNaN(m.At(0, 1)))
	assert.Greater(t, m.At(0, 1), 0.9)
}

func TestCorrelationMatrixConstantColumn(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"x", "c"},
		{"1", "7"},
		{"2", "7"},
		{"3", "7"},
	},
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	require.NoError(t, df.Error())
	ds := dataset.New(df, "corr")

	_, m, err := CorrelationMatrix(ds)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m.At(0, 1)))
}

func TestCorrelationMatrixSelectedColumns(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"x", "y", "label"},
		{"1", "2", "a"},
		{"2", "4", "b"},
		{"3", "6", "c"},
	},
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	require.NoError(t, df.Error())
	ds := dataset.New(df, "corr")

	labels, m, err := CorrelationMatrix(ds, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, labels)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
}
