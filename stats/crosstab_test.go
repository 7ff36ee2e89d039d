package stats

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edakit/edakit/dataset"
)

func TestCrosstab(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"sex", "survived"},
		{"male", "0"},
		{"male", "0"},
		{"male", "1"},
		{"female", "1"},
		{"female", "1"},
		{"female", "0"},
		{"", "1"}, // missing row value is excluded
	},
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues([]string{""}),
	)
	require.NoError(t, df.Error())
	ds := dataset.New(df, "crosstab")

	ct, err := Crosstab(ds, "sex", "survived")
	require.NoError(t, err)

	assert.Equal(t, []string{"female", "male"}, ct.RowLabels)
	assert.Equal(t, []string{"0", "1"}, ct.ColLabels)
	assert.Equal(t, [][]float64{{1, 2}, {2, 1}}, ct.Counts)
	assert.InDelta(t, 6.0, ct.Total(), 1e-12)
}

func TestGroupMeans(t *testing.T) {
	ds := statsDataset(t)

	groups, err := GroupMeans(ds, "group", "value")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "a", groups[0].Group)
	assert.Equal(t, 2, groups[0].Count)
	assert.InDelta(t, 1.5, groups[0].Means["value"], 1e-12)

	assert.Equal(t, "b", groups[1].Group)
	assert.Equal(t, 3, groups[1].Count)
	// missing value excluded from the mean
	assert.InDelta(t, 3.5, groups[1].Means["value"], 1e-12)
}

func TestGroupMeansAllMissing(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"g", "v"},
		{"a", ""},
		{"a", "1"},
	},
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues([]string{""}),
	)
	require.NoError(t, df.Error())
	ds := dataset.New(df, "g")

	groups, err := GroupMeans(ds, "g", "v")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.InDelta(t, 1.0, groups[0].Means["v"], 1e-12)
	assert.False(t, math.IsNaN(groups[0].Means["v"]))
}

func TestGroupValues(t *testing.T) {
	ds := statsDataset(t)

	labels, values, err := GroupValues(ds, "group", "value")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
	require.Len(t, values, 2)
	assert.Equal(t, []float64{1, 2}, values[0])
	assert.Equal(t, []float64{3, 4}, values[1]) // NA row dropped
}

func TestGroupValuesMissingColumn(t *testing.T) {
	ds := statsDataset(t)
	_, _, err := GroupValues(ds, "group", "no_such")
	assert.Error(t, err)
}
