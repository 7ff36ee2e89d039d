// Package report は分析結果の出力を提供します。
// コンソール向けのテキストレポートと、excelizeによる
// Excelワークブックへのエクスポートの2系統があります。
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/stats"
)

// Writer はコンソール向けのテキストレポートを書き出す
type Writer struct {
	out io.Writer
}

// NewWriter は新しいWriterを作成する
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Section はセクション見出しを書き出す
func (w *Writer) Section(title string) {
	fmt.Fprintf(w.out, "\n=== %s ===\n", title)
}

// Line は1行のテキストを書き出す
func (w *Writer) Line(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Shape はデータセットの形状と列一覧を書き出す
func (w *Writer) Shape(ds *dataset.Dataset) {
	rows, cols := ds.Shape()
	fmt.Fprintf(w.out, "shape: (%d, %d)\n", rows, cols)
	fmt.Fprintf(w.out, "columns: %s\n", strings.Join(ds.Columns(), ", "))
}

// Head は先頭n行をテーブルとして書き出す
func (w *Writer) Head(ds *dataset.Dataset, n int) {
	records := ds.Head(n).Records()
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	for _, rec := range records {
		fmt.Fprintln(tw, strings.Join(rec, "\t"))
	}
	tw.Flush()
}

// MissingCounts は列ごとの欠損値数を書き出す
func (w *Writer) MissingCounts(ds *dataset.Dataset) {
	counts := ds.MissingCounts()
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tmissing")
	for _, name := range ds.Columns() {
		fmt.Fprintf(tw, "%s\t%d\n", name, counts[name])
	}
	tw.Flush()
}

// Describe は記述統計量のテーブルを書き出す
func (w *Writer) Describe(summaries []stats.ColumnSummary) {
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcount\tmissing\tmean\tstd\tmin\t25%\t50%\t75%\tmax\tskew")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Column, s.Count, s.Missing,
			num(s.Mean), num(s.Std), num(s.Min), num(s.Q25),
			num(s.Median), num(s.Q75), num(s.Max), num(s.Skew))
	}
	tw.Flush()
}

// GroupMeans はグループ別平均のテーブルを書き出す
func (w *Writer) GroupMeans(by string, groups []stats.GroupSummary, valueCols []string) {
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	header := []string{by, "count"}
	header = append(header, valueCols...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, g := range groups {
		row := []string{g.Group, fmt.Sprintf("%d", g.Count)}
		for _, col := range valueCols {
			row = append(row, num(g.Means[col]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// Crosstab は分割表を書き出す
func (w *Writer) Crosstab(ct *stats.Contingency) {
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	header := append([]string{ct.RowColumn + "\\" + ct.ColColumn}, ct.ColLabels...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i, label := range ct.RowLabels {
		row := []string{label}
		for j := range ct.ColLabels {
			row = append(row, fmt.Sprintf("%.0f", ct.Counts[i][j]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// TestResult は検定結果を書き出す
func (w *Writer) TestResult(r *stats.TestResult) {
	fmt.Fprintln(w.out, r.String())
	if r.Significant(0.05) {
		fmt.Fprintln(w.out, "  -> significant at alpha=0.05")
	} else {
		fmt.Fprintln(w.out, "  -> not significant at alpha=0.05")
	}
}

// num は数値をレポート向けにフォーマットする
func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v)
}
