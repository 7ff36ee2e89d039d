// Package edakit provides an exploratory data analysis toolkit for Go,
// covering the usual notebook workflow: load tabular data, clean missing
// values, compute descriptive statistics, render charts and run basic
// hypothesis tests.
//
// edakit offers a pandas/scikit-learn-like workflow so that data analysis
// written in Go stays close to what data scientists already know.
//
// # Features
//
// - DataFrame-backed datasets: CSV and Excel input via gota
// - Cleaning: sparse-column dropping, mean/median/mode imputation
// - Descriptive statistics: per-column summaries, value counts, correlation
// - Hypothesis tests: chi-square independence, Kruskal-Wallis
// - Charts: histograms, bar charts, scatter plots, box plots, heatmaps and
// pair plots rendered as PNG files via gonum/plot
// - Excel export: summary workbooks via excelize
//
// # Installation
//
// Install edakit using go get:
//
//	go get github.com/edakit/edakit
//
// # Quick Start
//
// Describe a CSV file and impute a column:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "github.com/edakit/edakit/dataset"
//	    "github.com/edakit/edakit/preprocessing"
//	    "github.com/edakit/edakit/stats"
//	)
//
//	func main() {
//	    ds, err := dataset.Load("prices.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ds, err = preprocessing.ImputeNumericColumn(ds, "unit_price", preprocessing.StrategyMedian)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    summaries, err := stats.Describe(ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, s := range summaries {
//	        fmt.Printf("%s: mean=%.2f std=%.2f\n", s.Column, s.Mean, s.Std)
//	    }
//	}
//
// # Packages
//
// The toolkit is organized into several packages:
//
//   - dataset: DataFrame-backed datasets, CSV/Excel loading, bundled samples
//   - preprocessing: imputers, scalers and encoders with a Fit/Transform API
//   - stats: descriptive statistics, crosstabs and hypothesis tests
//   - visualization: PNG chart rendering
//   - report: console tables and Excel workbooks
//   - analysis: end-to-end pipelines used by the edakit CLI
//
// # Error Handling
//
// All errors include stack traces and can be inspected with errors.Is/As:
//
//	ds, err := dataset.Load("missing.csv")
//	if err != nil {
//	    var loadErr *edaerrors.LoadError
//	    if errors.As(err, &loadErr) {
//	        log.Printf("load failed (%s): %v", loadErr.Kind, err)
//	    }
//	}
//
// For more examples and documentation, see https://pkg.go.dev/github.com/edakit/edakit
package edakit
