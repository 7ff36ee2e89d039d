// Package config resolves run configuration for edakit analyses.
// Precedence: flags > environment > config file > defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/edakit/edakit/pkg/errors"
)

// Config holds the settings shared by all analysis pipelines.
type Config struct {
	// DataDir is the folder searched for input CSV files.
	DataDir string `mapstructure:"data_dir"`

	// RetailCSV is the retail pricing dataset file name inside DataDir.
	RetailCSV string `mapstructure:"retail_csv"`

	// OutDir is where charts and workbooks are written.
	OutDir string `mapstructure:"out_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// HistogramBins is the default bin count for histograms.
	HistogramBins int `mapstructure:"histogram_bins"`

	// SparseThreshold is the missing-value ratio above which a column is dropped.
	SparseThreshold float64 `mapstructure:"sparse_threshold"`

	// ExportWorkbook controls whether an Excel summary workbook is written.
	ExportWorkbook bool `mapstructure:"export_workbook"`
}

// RetailPath returns the resolved path of the retail dataset.
func (c *Config) RetailPath() string {
	return filepath.Join(c.DataDir, c.RetailCSV)
}

// Load reads configuration from the optional config file, environment
// variables prefixed with EDAKIT_, and built-in defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EDAKIT")
	v.AutomaticEnv()

	v.SetDefault("data_dir", "data")
	v.SetDefault("retail_csv", "retail_prices.csv")
	v.SetDefault("out_dir", "output")
	v.SetDefault("log_level", "info")
	v.SetDefault("histogram_bins", 20)
	v.SetDefault("sparse_threshold", 0.5)
	v.SetDefault("export_workbook", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", cfgFile)
		}
	} else {
		v.SetConfigName("edakit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".edakit"))
		}
		// A missing default config file is fine; defaults apply.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "config: read config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HistogramBins < 1 {
		return errors.NewValidationError("histogram_bins", "must be at least 1", c.HistogramBins)
	}
	if c.SparseThreshold < 0 || c.SparseThreshold > 1 {
		return errors.NewValidationError("sparse_threshold", "must be in [0, 1]", c.SparseThreshold)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("log_level", "must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}
