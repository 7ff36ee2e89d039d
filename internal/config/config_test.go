package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "retail_prices.csv", cfg.RetailCSV)
	assert.Equal(t, "output", cfg.OutDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 20, cfg.HistogramBins)
	assert.InDelta(t, 0.5, cfg.SparseThreshold, 1e-12)
	assert.True(t, cfg.ExportWorkbook)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edakit.yaml")
	content := "data_dir: /srv/data\nhistogram_bins: 30\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, 30, cfg.HistogramBins)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, "output", cfg.OutDir)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no_such.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log_level: verbose\n"},
		{"zero bins", "histogram_bins: 0\n"},
		{"threshold above one", "sparse_threshold: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "edakit.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestRetailPath(t *testing.T) {
	cfg := &Config{DataDir: "data", RetailCSV: "retail_prices.csv"}
	assert.Equal(t, filepath.Join("data", "retail_prices.csv"), cfg.RetailPath())
}
