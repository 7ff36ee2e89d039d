package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/pkg/errors"
)

// Contingency は2つのカテゴリ列の分割表（観測度数）
type Contingency struct {
	RowColumn string
	ColColumn string
	RowLabels []string
	ColLabels []string
	Counts    [][]float64 // len(RowLabels) × len(ColLabels)
}

// Total は全観測数を返す
func (c *Contingency) Total() float64 {
	var total float64
	for _, row := range c.Counts {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Crosstab は2つの列の分割表を作成する。
// いずれかの値が欠損している行は集計から除外される。
// ラベルは辞書順に並ぶ。
func Crosstab(ds *dataset.Dataset, rowCol, colCol string) (*Contingency, error) {
	rows, err := ds.Column(rowCol)
	if err != nil {
		return nil, err
	}
	cols, err := ds.Column(colCol)
	if err != nil {
		return nil, err
	}
	if rows.Len() != cols.Len() {
		return nil, errors.NewDimensionError("Crosstab", rows.Len(), cols.Len(), 0)
	}

	counts := make(map[string]map[string]float64)
	rowSet := make(map[string]struct{})
	colSet := make(map[string]struct{})
	for i := 0; i < rows.Len(); i++ {
		re, ce := rows.Elem(i), cols.Elem(i)
		if re.IsNA() || ce.IsNA() {
			continue
		}
		r, c := re.String(), ce.String()
		rowSet[r] = struct{}{}
		colSet[c] = struct{}{}
		if counts[r] == nil {
			counts[r] = make(map[string]float64)
		}
		counts[r][c]++
	}
	if len(rowSet) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "stats.Crosstab")
	}

	ct := &Contingency{
		RowColumn: rowCol,
		ColColumn: colCol,
		RowLabels: sortedKeys(rowSet),
		ColLabels: sortedKeys(colSet),
	}
	ct.Counts = make([][]float64, len(ct.RowLabels))
	for i, r := range ct.RowLabels {
		ct.Counts[i] = make([]float64, len(ct.ColLabels))
		for j, c := range ct.ColLabels {
			ct.Counts[i][j] = counts[r][c]
		}
	}
	return ct, nil
}

// GroupSummary はグループ別集計の1行
type GroupSummary struct {
	Group string
	Count int
	Means map[string]float64 // 値列ごとの平均
}

// GroupMeans はbyの値でグループ化し、各数値列の平均を計算する。
// groupbyの値またはすべての値列が欠損している行は除外される。
// 戻り値はグループ名の辞書順。
func GroupMeans(ds *dataset.Dataset, by string, valueCols ...string) ([]GroupSummary, error) {
	if len(valueCols) == 0 {
		return nil, errors.NewValueError("GroupMeans", "need at least one value column")
	}
	byCol, err := ds.Column(by)
	if err != nil {
		return nil, err
	}

	vectors := make(map[string][]float64, len(valueCols))
	for _, name := range valueCols {
		col, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		vectors[name] = col.Float()
	}

	grouped := make(map[string]map[string][]float64)
	groupSizes := make(map[string]int)
	for i := 0; i < byCol.Len(); i++ {
		elem := byCol.Elem(i)
		if elem.IsNA() {
			continue
		}
		g := elem.String()
		groupSizes[g]++
		if grouped[g] == nil {
			grouped[g] = make(map[string][]float64)
		}
		for name, vec := range vectors {
			if !math.IsNaN(vec[i]) {
				grouped[g][name] = append(grouped[g][name], vec[i])
			}
		}
	}
	if len(grouped) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "stats.GroupMeans")
	}

	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		summary := GroupSummary{Group: g, Count: groupSizes[g], Means: make(map[string]float64)}
		for _, name := range valueCols {
			values := grouped[g][name]
			if len(values) == 0 {
				summary.Means[name] = math.NaN()
				continue
			}
			summary.Means[name] = stat.Mean(values, nil)
		}
		out = append(out, summary)
	}
	return out, nil
}

// GroupValues はbyの値でグループ化し、value列の非欠損値を
// グループごとに集める。Kruskal-Wallis検定や箱ひげ図の入力に使う。
// 戻り値はグループ名の辞書順。
func GroupValues(ds *dataset.Dataset, by, value string) ([]string, [][]float64, error) {
	byCol, err := ds.Column(by)
	if err != nil {
		return nil, nil, err
	}
	valCol, err := ds.Column(value)
	if err != nil {
		return nil, nil, err
	}
	values := valCol.Float()

	grouped := make(map[string][]float64)
	for i := 0; i < byCol.Len(); i++ {
		elem := byCol.Elem(i)
		if elem.IsNA() || math.IsNaN(values[i]) {
			continue
		}
		g := elem.String()
		grouped[g] = append(grouped[g], values[i])
	}
	if len(grouped) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "stats.GroupValues")
	}

	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	out := make([][]float64, len(groups))
	for i, g := range groups {
		out[i] = grouped[g]
	}
	return groups, out, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
