package analysis

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edakit/edakit/internal/config"
	"github.com/edakit/edakit/pkg/errors"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:         "testdata",
		RetailCSV:       "retail_prices.csv",
		OutDir:          t.TempDir(),
		LogLevel:        "error",
		HistogramBins:   10,
		SparseThreshold: 0.5,
		ExportWorkbook:  true,
	}
}

func assertOutputFile(t *testing.T, cfg *config.Config, name string) {
	t.Helper()
	info, err := os.Stat(filepath.Join(cfg.OutDir, name))
	require.NoError(t, err, name)
	assert.Greater(t, info.Size(), int64(0), name)
}

func TestRetail(t *testing.T) {
	cfg := testConfig(t)
	var buf bytes.Buffer

	require.NoError(t, Retail(cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "retail price analysis")
	assert.Contains(t, out, "dropped sparse columns: [promo_code]")
	assert.Contains(t, out, "=== dataset ===")
	assert.Contains(t, out, "=== descriptive statistics ===")
	assert.Contains(t, out, "mean price and quantity by category")
	assert.Contains(t, out, "garden")

	for _, name := range []string{
		"retail_price_hist.png",
		"retail_category_counts.png",
		"retail_price_vs_quantity.png",
		"retail_price_by_category_box.png",
		"retail_correlation.png",
		"retail_pairplot.png",
		"retail_summary.xlsx",
	} {
		assertOutputFile(t, cfg, name)
	}
}

func TestRetailMissingDataDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.DataDir = filepath.Join(t.TempDir(), "nowhere")

	err := Retail(cfg, &bytes.Buffer{})
	require.Error(t, err)

	var loadErr *errors.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "not_found", loadErr.Kind)
}

func TestRetailWithoutWorkbook(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExportWorkbook = false

	require.NoError(t, Retail(cfg, &bytes.Buffer{}))

	_, err := os.Stat(filepath.Join(cfg.OutDir, "retail_summary.xlsx"))
	assert.True(t, os.IsNotExist(err))
}

func TestTitanic(t *testing.T) {
	cfg := testConfig(t)
	var buf bytes.Buffer

	require.NoError(t, Titanic(cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "passenger survival analysis")
	assert.Contains(t, out, "dropped sparse columns: [Cabin]")
	assert.Contains(t, out, "survival rate and fare by embarkation port")
	assert.Contains(t, out, "sex vs survival")
	assert.Contains(t, out, "chi-square")
	assert.Contains(t, out, "kruskal-wallis")
	assert.Contains(t, out, "=== summary ===")
	assert.Contains(t, out, "overall survival")
	assert.Contains(t, out, "females:")
	assert.Contains(t, out, "males:")

	for _, name := range []string{
		"titanic_age_hist.png",
		"titanic_fare_by_class_box.png",
		"titanic_survival_by_sex.png",
		"titanic_age_vs_fare.png",
		"titanic_correlation.png",
		"titanic_pairplot.png",
		"titanic_summary.xlsx",
	} {
		assertOutputFile(t, cfg, name)
	}
}
