// Package log defines standard attribute keys for analysis operations.
//
// Using these keys consistently makes run logs greppable: every dataset load
// reports the same shape keys, every chart reports the same path key, and
// every hypothesis test reports the same statistic keys.
package log

// Analysis and component context.
const (
	// AnalysisKey identifies which analysis pipeline is running.
	// Examples: "retail", "titanic"
	AnalysisKey = "analysis"

	// ComponentKey identifies the package performing the operation.
	// Examples: "dataset", "preprocessing", "visualization"
	ComponentKey = "component"

	// StepKey names the pipeline step within an analysis.
	// Examples: "load", "clean", "describe", "plot", "test"
	StepKey = "step"
)

// Dataset shape and characteristics.
const (
	// RowsKey is the number of rows in the dataset.
	RowsKey = "dataset.rows"

	// ColsKey is the number of columns in the dataset.
	ColsKey = "dataset.cols"

	// ColumnKey names the column an operation touches.
	ColumnKey = "column"

	// MissingKey is a count of missing values.
	MissingKey = "missing"

	// SourceKey records where a dataset came from (path or bundled name).
	SourceKey = "dataset.source"
)

// Chart rendering.
const (
	// ChartKindKey is the chart type: "histogram", "bar", "scatter",
	// "box", "heatmap", "pairplot".
	ChartKindKey = "chart.kind"

	// ChartPathKey is the PNG path a chart was written to.
	ChartPathKey = "chart.path"
)

// Hypothesis tests.
const (
	// TestNameKey names the statistical test, e.g. "chi-square".
	TestNameKey = "test.name"

	// StatisticKey is the test statistic value.
	StatisticKey = "test.statistic"

	// PValueKey is the p-value of the test.
	PValueKey = "test.p_value"

	// DofKey is the degrees of freedom.
	DofKey = "test.dof"
)

// Timing.
const (
	// DurationMsKey records the execution time of a step in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrAttrKey carries the error message.
	ErrAttrKey = "error"

	// ErrDetailKey carries the structured error object, when available.
	ErrDetailKey = "error.detail"

	// StacktraceAttrKey carries the captured stack trace.
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr pairs an error with the standard error key for use in field lists.
func ErrAttr(err error) []any {
	return []any{ErrAttrKey, err}
}
