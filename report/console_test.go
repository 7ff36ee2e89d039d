package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/stats"
)

func reportDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	df := dataframe.LoadRecords([][]string{
		{"name", "score"},
		{"alice", "80"},
		{"bob", ""},
		{"carol", "95"},
	},
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues([]string{""}),
	)
	require.NoError(t, df.Error())
	return dataset.New(df, "scores")
}

func TestWriterShapeAndHead(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	ds := reportDataset(t)

	w.Section("overview")
	w.Shape(ds)
	w.Head(ds, 2)

	out := buf.String()
	assert.Contains(t, out, "=== overview ===")
	assert.Contains(t, out, "shape: (3, 2)")
	assert.Contains(t, out, "columns: name, score")
	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, "carol") // beyond head
}

func TestWriterMissingCounts(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.MissingCounts(reportDataset(t))

	out := buf.String()
	assert.Contains(t, out, "column")
	assert.Contains(t, out, "score")
}

func TestWriterDescribe(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Describe([]stats.ColumnSummary{
		{Column: "score", Count: 2, Missing: 1, Mean: 87.5, Std: 10.6066,
			Min: 80, Q25: 83.75, Median: 87.5, Q75: 91.25, Max: 95, Skew: math.NaN()},
	})

	out := buf.String()
	assert.Contains(t, out, "score")
	assert.Contains(t, out, "87.5000")
	assert.Contains(t, out, "NaN")
}

func TestWriterGroupMeans(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.GroupMeans("city", []stats.GroupSummary{
		{Group: "tokyo", Count: 3, Means: map[string]float64{"price": 120.5}},
		{Group: "osaka", Count: 2, Means: map[string]float64{"price": 99.9}},
	}, []string{"price"})

	out := buf.String()
	assert.Contains(t, out, "tokyo")
	assert.Contains(t, out, "120.5000")
}

func TestWriterCrosstab(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Crosstab(&stats.Contingency{
		RowColumn: "Sex",
		ColColumn: "Survived",
		RowLabels: []string{"female", "male"},
		ColLabels: []string{"0", "1"},
		Counts:    [][]float64{{10, 30}, {40, 20}},
	})

	out := buf.String()
	assert.Contains(t, out, "Sex\\Survived")
	assert.Contains(t, out, "female")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3) // header + two rows
}

func TestWriterTestResult(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.TestResult(&stats.TestResult{Name: "chi-square", Statistic: 6.67, DoF: 1, PValue: 0.0098})
	assert.Contains(t, buf.String(), "significant at alpha=0.05")

	buf.Reset()
	w.TestResult(&stats.TestResult{Name: "chi-square", Statistic: 0.1, DoF: 1, PValue: 0.75})
	assert.Contains(t, buf.String(), "not significant at alpha=0.05")
}
