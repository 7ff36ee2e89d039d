package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/edakit/edakit/pkg/errors"
	"github.com/edakit/edakit/pkg/log"
	"github.com/edakit/edakit/stats"
)

// Workbook は分析結果をExcelワークブックに集約するビルダー
type Workbook struct {
	file   *excelize.File
	sheets int
}

// NewWorkbook は新しいWorkbookを作成する
func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// AddDescribeSheet は記述統計量のシートを追加する
func (wb *Workbook) AddDescribeSheet(name string, summaries []stats.ColumnSummary) error {
	if err := wb.newSheet(name); err != nil {
		return err
	}
	header := []interface{}{"column", "count", "missing", "mean", "std", "min", "25%", "50%", "75%", "max", "skew"}
	if err := wb.file.SetSheetRow(name, "A1", &header); err != nil {
		return errors.Wrap(err, "report: write sheet header")
	}
	for i, s := range summaries {
		row := []interface{}{
			s.Column, s.Count, s.Missing,
			cell(s.Mean), cell(s.Std), cell(s.Min), cell(s.Q25),
			cell(s.Median), cell(s.Q75), cell(s.Max), cell(s.Skew),
		}
		axis := fmt.Sprintf("A%d", i+2)
		if err := wb.file.SetSheetRow(name, axis, &row); err != nil {
			return errors.Wrap(err, "report: write describe row")
		}
	}
	return nil
}

// AddCrosstabSheet は分割表のシートを追加する
func (wb *Workbook) AddCrosstabSheet(name string, ct *stats.Contingency) error {
	if err := wb.newSheet(name); err != nil {
		return err
	}
	header := []interface{}{ct.RowColumn + "\\" + ct.ColColumn}
	for _, label := range ct.ColLabels {
		header = append(header, label)
	}
	if err := wb.file.SetSheetRow(name, "A1", &header); err != nil {
		return errors.Wrap(err, "report: write sheet header")
	}
	for i, label := range ct.RowLabels {
		row := []interface{}{label}
		for j := range ct.ColLabels {
			row = append(row, ct.Counts[i][j])
		}
		axis := fmt.Sprintf("A%d", i+2)
		if err := wb.file.SetSheetRow(name, axis, &row); err != nil {
			return errors.Wrap(err, "report: write crosstab row")
		}
	}
	return nil
}

// AddGroupSheet はグループ別平均のシートを追加する
func (wb *Workbook) AddGroupSheet(name, by string, groups []stats.GroupSummary, valueCols []string) error {
	if err := wb.newSheet(name); err != nil {
		return err
	}
	header := []interface{}{by, "count"}
	for _, col := range valueCols {
		header = append(header, col)
	}
	if err := wb.file.SetSheetRow(name, "A1", &header); err != nil {
		return errors.Wrap(err, "report: write sheet header")
	}
	for i, g := range groups {
		row := []interface{}{g.Group, g.Count}
		for _, col := range valueCols {
			row = append(row, cell(g.Means[col]))
		}
		axis := fmt.Sprintf("A%d", i+2)
		if err := wb.file.SetSheetRow(name, axis, &row); err != nil {
			return errors.Wrap(err, "report: write group row")
		}
	}
	return nil
}

// AddTestsSheet は検定結果のシートを追加する
func (wb *Workbook) AddTestsSheet(name string, results []*stats.TestResult) error {
	if err := wb.newSheet(name); err != nil {
		return err
	}
	header := []interface{}{"test", "statistic", "dof", "p-value"}
	if err := wb.file.SetSheetRow(name, "A1", &header); err != nil {
		return errors.Wrap(err, "report: write sheet header")
	}
	for i, r := range results {
		row := []interface{}{r.Name, r.Statistic, r.DoF, r.PValue}
		axis := fmt.Sprintf("A%d", i+2)
		if err := wb.file.SetSheetRow(name, axis, &row); err != nil {
			return errors.Wrap(err, "report: write test row")
		}
	}
	return nil
}

// Save はワークブックをファイルに書き出す
func (wb *Workbook) Save(path string) error {
	if wb.sheets == 0 {
		return errors.Wrap(errors.ErrEmptyData, "report: workbook has no sheets")
	}
	if err := wb.file.SaveAs(path); err != nil {
		return errors.Wrap(err, "report: save workbook")
	}
	log.GetLoggerWithName("report").Info("workbook written", "path", path)
	return nil
}

// Close は内部のファイルハンドルを解放する
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// newSheet はシートを追加する。最初のシートはデフォルトシートを改名して使う。
func (wb *Workbook) newSheet(name string) error {
	if wb.sheets == 0 {
		defaultName := wb.file.GetSheetName(0)
		if err := wb.file.SetSheetName(defaultName, name); err != nil {
			return errors.Wrap(err, "report: rename default sheet")
		}
	} else {
		if _, err := wb.file.NewSheet(name); err != nil {
			return errors.Wrap(err, "report: create sheet")
		}
	}
	wb.sheets++
	return nil
}

// cell はNaNを空セル向けの文字列に変換する
func cell(v float64) interface{} {
	if math.IsNaN(v) {
		return ""
	}
	return v
}
