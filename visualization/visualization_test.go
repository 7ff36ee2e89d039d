package visualization

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// assertPNG は描画結果のファイルが存在して空でないことを確認する
func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist.png")

	out, err := Histogram([]float64{1, 2, 2, 3, 3, 3, 4, 5}, 5, path, ChartOptions{
		Title: "values", XLabel: "value", YLabel: "count",
	})
	require.NoError(t, err)
	assert.Equal(t, path, out)
	assertPNG(t, path)
}

func TestHistogramSkipsNaN(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist.png")

	nan := math.NaN()
	_, err := Histogram([]float64{1, nan, 2, nan, 3}, 3, path, ChartOptions{})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestHistogramEmpty(t *testing.T) {
	_, err := Histogram(nil, 5, filepath.Join(t.TempDir(), "hist.png"), ChartOptions{})
	assert.Error(t, err)
}

func TestBarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")

	_, err := BarChart([]string{"a", "b", "c"}, []float64{3, 1, 2}, path, ChartOptions{
		Title: "counts",
	})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestBarChartLengthMismatch(t *testing.T) {
	_, err := BarChart([]string{"a"}, []float64{1, 2},
		filepath.Join(t.TempDir(), "bar.png"), ChartOptions{})
	assert.Error(t, err)
}

func TestScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.png")

	_, err := Scatter([]float64{1, 2, 3}, []float64{2, 4, 6}, path, ChartOptions{})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestScatterByCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.png")

	x := []float64{1, 2, 3, 4}
	y := []float64{1, 4, 9, 16}
	categories := []string{"a", "b", "a", "b"}

	_, err := ScatterByCategory(x, y, categories, path, ChartOptions{})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestBoxPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.png")

	groups := [][]float64{
		{1, 2, 3, 4, 5},
		{10, 20, 30, 40, 50},
	}
	_, err := BoxPlot([]string{"low", "high"}, groups, path, ChartOptions{})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestHeatmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.png")

	m := mat.NewSymDense(3, []float64{
		1, 0.5, -0.2,
		0.5, 1, 0.8,
		-0.2, 0.8, 1,
	})
	_, err := Heatmap(m, []string{"a", "b", "c"}, path, ChartOptions{Title: "corr"})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestPairPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.png")

	vectors := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 4, 6, 8, 10},
		{5, 4, 3, 2, 1},
	}
	_, err := PairPlot([]string{"x", "y", "z"}, vectors, path, ChartOptions{})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "hist.png")

	_, err := Histogram([]float64{1, 2, 3}, 3, path, ChartOptions{})
	require.NoError(t, err)
	assertPNG(t, path)
}
