// Package dataset はEDA対象の表形式データセットの読み込みと検査を提供します。
// 内部表現にはgotaのDataFrameを使用し、欠損値の集計・列の型分類・
// 行列の取り出しなど、分析パイプラインが必要とする操作を揃えます。
package dataset

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/edakit/edakit/pkg/errors"
)

// Dataset は分析対象の矩形データセットです。
// 行がレコード、列が名前付きフィールド（数値・カテゴリ混在）を表します。
type Dataset struct {
	df   dataframe.DataFrame
	name string
}

// New はgotaのDataFrameからDatasetを作成する
func New(df dataframe.DataFrame, name string) *Dataset {
	return &Dataset{df: df, name: name}
}

// Name はデータセット名を返す
func (d *Dataset) Name() string { return d.name }

// DF は内部のDataFrameのコピーを返す
func (d *Dataset) DF() dataframe.DataFrame { return d.df.Copy() }

// Shape は (行数, 列数) を返す
func (d *Dataset) Shape() (int, int) {
	return d.df.Nrow(), d.df.Ncol()
}

// Columns は列名の一覧を返す
func (d *Dataset) Columns() []string {
	return d.df.Names()
}

// HasColumn は列が存在するかどうかを返す
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.df.Names() {
		if c == name {
			return true
		}
	}
	return false
}

// Column は列をSeriesとして返す
//
// 戻り値:
//   - series.Series: 列のコピー
//   - error: 列が存在しない場合はColumnNotFoundError
func (d *Dataset) Column(name string) (series.Series, error) {
	if !d.HasColumn(name) {
		return series.Series{}, errors.NewColumnNotFoundError(name, d.df.Names())
	}
	return d.df.Col(name), nil
}

// Head は先頭n行を含む新しいDatasetを返す
func (d *Dataset) Head(n int) *Dataset {
	if n > d.df.Nrow() {
		n = d.df.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return &Dataset{df: d.df.Subset(idx), name: d.name}
}

// MissingCounts は列ごとの欠損値数を返す
func (d *Dataset) MissingCounts() map[string]int {
	counts := make(map[string]int, d.df.Ncol())
	for _, name := range d.df.Names() {
		col := d.df.Col(name)
		missing := 0
		for i := 0; i < col.Len(); i++ {
			if col.Elem(i).IsNA() {
				missing++
			}
		}
		counts[name] = missing
	}
	return counts
}

// MissingRatio は列の欠損値の割合を返す
func (d *Dataset) MissingRatio(name string) (float64, error) {
	col, err := d.Column(name)
	if err != nil {
		return 0, err
	}
	if col.Len() == 0 {
		return 0, nil
	}
	missing := 0
	for i := 0; i < col.Len(); i++ {
		if col.Elem(i).IsNA() {
			missing++
		}
	}
	return float64(missing) / float64(col.Len()), nil
}

// NumericColumns は数値型（Int/Float）の列名を返す
func (d *Dataset) NumericColumns() []string {
	var cols []string
	names := d.df.Names()
	for i, t := range d.df.Types() {
		if t == series.Int || t == series.Float {
			cols = append(cols, names[i])
		}
	}
	return cols
}

// CategoricalColumns は文字列型・真偽型の列名を返す
func (d *Dataset) CategoricalColumns() []string {
	var cols []string
	names := d.df.Names()
	for i, t := range d.df.Types() {
		if t == series.String || t == series.Bool {
			cols = append(cols, names[i])
		}
	}
	return cols
}

// NumericValues は数値列の値を返す。欠損値（NaN）は除外される。
//
// パラメータ:
//   - name: 列名
//
// 戻り値:
//   - []float64: 欠損を除いた値
//   - error: 列が存在しない場合、または数値列でない場合
func (d *Dataset) NumericValues(name string) ([]float64, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	t := col.Type()
	if t != series.Int && t != series.Float {
		return nil, errors.NewTypeError("NumericValues", name, "numeric", string(t))
	}
	raw := col.Float()
	values := make([]float64, 0, len(raw))
	missing := 0
	for _, v := range raw {
		if math.IsNaN(v) {
			missing++
			continue
		}
		values = append(values, v)
	}
	if missing > 0 {
		errors.Warn(errors.NewMissingDataWarning(name, missing, float64(missing)/float64(len(raw))))
	}
	return values, nil
}

// DropColumns は指定した列を取り除いた新しいDatasetを返す
func (d *Dataset) DropColumns(names ...string) (*Dataset, error) {
	for _, name := range names {
		if !d.HasColumn(name) {
			return nil, errors.NewColumnNotFoundError(name, d.df.Names())
		}
	}
	dropped := d.df.Drop(names)
	if dropped.Err != nil {
		return nil, errors.Wrap(dropped.Err, "dataset: drop columns")
	}
	return &Dataset{df: dropped, name: d.name}, nil
}

// WithColumn は列を追加（同名の場合は置換）した新しいDatasetを返す
func (d *Dataset) WithColumn(s series.Series) (*Dataset, error) {
	if s.Len() != d.df.Nrow() {
		return nil, errors.NewDimensionError("WithColumn", d.df.Nrow(), s.Len(), 0)
	}
	mutated := d.df.Mutate(s)
	if mutated.Err != nil {
		return nil, errors.Wrap(mutated.Err, "dataset: mutate")
	}
	return &Dataset{df: mutated, name: d.name}, nil
}

// DropRowsWithNA は指定列（省略時は全列）に欠損を含む行を取り除いた
// 新しいDatasetを返す
func (d *Dataset) DropRowsWithNA(cols ...string) (*Dataset, error) {
	if len(cols) == 0 {
		cols = d.df.Names()
	}
	columns := make([]series.Series, 0, len(cols))
	for _, name := range cols {
		col, err := d.Column(name)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	var keep []int
	for i := 0; i < d.df.Nrow(); i++ {
		ok := true
		for _, col := range columns {
			if col.Elem(i).IsNA() {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, i)
		}
	}
	subset := d.df.Subset(keep)
	if subset.Err != nil {
		return nil, errors.Wrap(subset.Err, "dataset: subset")
	}
	return &Dataset{df: subset, name: d.name}, nil
}

// Records はヘッダ行を含む全レコードを文字列の二次元スライスで返す
func (d *Dataset) Records() [][]string {
	return d.df.Records()
}
