package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edakit/edakit/analysis"
)

var titanicWorkbook bool

var titanicCmd = &cobra.Command{
	Use:   "titanic",
	Short: "Analyze the bundled passenger survival dataset",
	Long: `Runs the survival analysis on the bundled Titanic sample: cleans
missing values, prints descriptive statistics, runs chi-square and
Kruskal-Wallis tests and writes charts to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("workbook") {
			cfg.ExportWorkbook = titanicWorkbook
		}
		return analysis.Titanic(cfg, os.Stdout)
	},
}

func init() {
	titanicCmd.Flags().BoolVar(&titanicWorkbook, "workbook", true, "export an Excel summary workbook")
	rootCmd.AddCommand(titanicCmd)
}
