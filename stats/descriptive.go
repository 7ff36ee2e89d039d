// Package stats は記述統計と仮説検定を提供します。
// pandasのdescribe / scipy.statsの検定に相当する操作を、
// gonumの統計ルーチンの上に実装しています。
package stats

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/pkg/errors"
)

// ColumnSummary は数値列の記述統計量
type ColumnSummary struct {
	Column  string
	Count   int // 非欠損値の数
	Missing int
	Mean    float64
	Std     float64 // 標本標準偏差
	Min     float64
	Q25     float64
	Median  float64
	Q75     float64
	Max     float64
	Skew    float64
}

// Describe は全ての数値列の記述統計量を計算する。
// pandasのDataFrame.describe()に相当し、列ごとに
// count / mean / std / min / 25% / 50% / 75% / max に加えて
// 欠損数と歪度を返す。
func Describe(ds *dataset.Dataset) ([]ColumnSummary, error) {
	numeric := ds.NumericColumns()
	if len(numeric) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "stats.Describe: no numeric columns")
	}

	summaries := make([]ColumnSummary, 0, len(numeric))
	for _, name := range numeric {
		col, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summarize(name, col.Float()))
	}
	return summaries, nil
}

// DescribeColumn は単一の数値列の記述統計量を計算する
func DescribeColumn(ds *dataset.Dataset, column string) (ColumnSummary, error) {
	col, err := ds.Column(column)
	if err != nil {
		return ColumnSummary{}, err
	}
	t := col.Type()
	if t != series.Int && t != series.Float {
		return ColumnSummary{}, errors.NewTypeError("DescribeColumn", column, "numeric", string(t))
	}
	return summarize(column, col.Float()), nil
}

// summarize は欠損（NaN）を除外して統計量を計算する
func summarize(name string, raw []float64) ColumnSummary {
	observed := make([]float64, 0, len(raw))
	missing := 0
	for _, v := range raw {
		if math.IsNaN(v) {
			missing++
			continue
		}
		observed = append(observed, v)
	}

	s := ColumnSummary{Column: name, Count: len(observed), Missing: missing}
	if len(observed) == 0 {
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max, s.Skew =
			math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}

	sorted := append([]float64(nil), observed...)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(observed, nil)
	s.Std = stat.StdDev(observed, nil)
	s.Min = sorted[0]
	s.Q25 = Quantile(sorted, 0.25)
	s.Median = Quantile(sorted, 0.5)
	s.Q75 = Quantile(sorted, 0.75)
	s.Max = sorted[len(sorted)-1]
	if len(observed) > 2 && s.Std > 0 {
		s.Skew = stat.Skew(observed, nil)
	} else {
		s.Skew = math.NaN()
	}
	return s
}

// Quantile はソート済みデータの分位数を線形補間で計算する。
// pandas/numpyのデフォルト（linear interpolation）と同じ定義。
//
// パラメータ:
//   - sorted: 昇順にソート済みの値
//   - p: 分位（0.0〜1.0）
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	frac := h - float64(lo)
	if lo+1 >= n {
		return sorted[n-1]
	}
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*frac
}

// ValueCounts はカテゴリ列の値ごとの出現数を返す。
// 欠損は集計から除外される。ラベルは件数の降順
// （同数の場合は辞書順）に並ぶ。
func ValueCounts(ds *dataset.Dataset, column string) ([]string, []int, error) {
	col, err := ds.Column(column)
	if err != nil {
		return nil, nil, err
	}
	counts := make(map[string]int)
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		if elem.IsNA() {
			continue
		}
		counts[elem.String()]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	values := make([]int, len(labels))
	for i, label := range labels {
		values[i] = counts[label]
	}
	return labels, values, nil
}
