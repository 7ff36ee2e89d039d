package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edakit/edakit/internal/config"
	"github.com/edakit/edakit/pkg/log"
)

var (
	// Global flags (resolved into config by loadConfig)
	cfgFile      string
	flagDataDir  string
	flagOutDir   string
	flagLogLevel string

	// Loaded configuration
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "edakit",
	Short: "edakit: exploratory data analysis for tabular datasets",
	Long: `edakit runs exploratory data analysis pipelines over tabular data:
it loads CSV or Excel input, cleans missing values, prints descriptive
statistics, renders charts as PNG files and runs basic hypothesis tests.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./edakit.yaml or ~/.edakit/edakit.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "out", "", "output directory for charts and workbooks (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

func loadConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if f.Changed("out") && flagOutDir != "" {
		cfg.OutDir = flagOutDir
	}
	if f.Changed("log-level") && flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	log.Setup(os.Stderr, log.ParseLevel(cfg.LogLevel), true)
}
