package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edakit/edakit/analysis"
)

var (
	retailCSV      string
	retailWorkbook bool
)

var retailCmd = &cobra.Command{
	Use:   "retail",
	Short: "Analyze a retail pricing CSV",
	Long: `Loads the retail pricing CSV from the data directory, cleans missing
values, prints descriptive statistics and per-category aggregates, and writes
charts and an Excel summary to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("csv") && retailCSV != "" {
			cfg.RetailCSV = retailCSV
		}
		if cmd.Flags().Changed("workbook") {
			cfg.ExportWorkbook = retailWorkbook
		}
		return analysis.Retail(cfg, os.Stdout)
	},
}

func init() {
	retailCmd.Flags().StringVar(&retailCSV, "csv", "", "retail CSV file name inside the data directory (overrides config)")
	retailCmd.Flags().BoolVar(&retailWorkbook, "workbook", true, "export an Excel summary workbook")
	rootCmd.AddCommand(retailCmd)
}
