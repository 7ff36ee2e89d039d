package preprocessing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/edakit/edakit/pkg/errors"
)

// ImputeStrategy は欠損値の補完方法
type ImputeStrategy string

const (
	// StrategyMean は欠損を平均値で埋める
	StrategyMean ImputeStrategy = "mean"
	// StrategyMedian は欠損を中央値で埋める
	StrategyMedian ImputeStrategy = "median"
	// StrategyMostFrequent は欠損を最頻値で埋める
	StrategyMostFrequent ImputeStrategy = "most_frequent"
	// StrategyConstant は欠損を固定値で埋める
	StrategyConstant ImputeStrategy = "constant"
)

// SimpleImputer は数値列の欠損値（NaN）を統計量で補完する変換器
type SimpleImputer struct {
	baseTransformer

	// Strategy は補完方法
	Strategy ImputeStrategy

	// FillValue はStrategyConstantの場合に使用する値
	FillValue float64

	// Statistic は学習された補完値
	Statistic float64
}

// NewSimpleImputer は新しいSimpleImputerを作成する
//
// パラメータ:
//   - strategy: 補完方法（mean / median / most_frequent / constant）
//
// 使用例:
//
//	imp := preprocessing.NewSimpleImputer(preprocessing.StrategyMedian)
//	filled, err := imp.FitTransform(values)
func NewSimpleImputer(strategy ImputeStrategy) *SimpleImputer {
	return &SimpleImputer{Strategy: strategy}
}

// NewConstantImputer は固定値で補完するSimpleImputerを作成する
func NewConstantImputer(fillValue float64) *SimpleImputer {
	return &SimpleImputer{Strategy: StrategyConstant, FillValue: fillValue}
}

// Fit は非欠損値から補完値を学習する
//
// パラメータ:
//   - values: 列の値（欠損はNaN）
//
// 戻り値:
//   - error: 非欠損値が存在しない場合・未知の戦略の場合
func (imp *SimpleImputer) Fit(values []float64) error {
	observed := dropNaN(values)
	if imp.Strategy != StrategyConstant && len(observed) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "SimpleImputer.Fit")
	}

	switch imp.Strategy {
	case StrategyMean:
		imp.Statistic = stat.Mean(observed, nil)
	case StrategyMedian:
		imp.Statistic = median(observed)
	case StrategyMostFrequent:
		imp.Statistic = mostFrequent(observed)
	case StrategyConstant:
		imp.Statistic = imp.FillValue
	default:
		return errors.NewValidationError("strategy", "unknown imputation strategy", string(imp.Strategy))
	}

	imp.setFitted()
	return nil
}

// Transform は学習済みの補完値で欠損を埋めた新しいスライスを返す
func (imp *SimpleImputer) Transform(values []float64) ([]float64, error) {
	if !imp.IsFitted() {
		return nil, errors.NewNotFittedError("SimpleImputer", "Transform")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = imp.Statistic
		} else {
			out[i] = v
		}
	}
	return out, nil
}

// FitTransform は学習と変換を同時に行う
func (imp *SimpleImputer) FitTransform(values []float64) ([]float64, error) {
	if err := imp.Fit(values); err != nil {
		return nil, err
	}
	return imp.Transform(values)
}

// CategoricalImputer はカテゴリ列の欠損値を最頻値または固定値で補完する変換器
type CategoricalImputer struct {
	baseTransformer

	// FillValue は固定値補完の場合の値（空の場合は最頻値補完）
	FillValue string

	// Statistic は学習された補完値
	Statistic string
}

// NewCategoricalImputer は最頻値で補完するCategoricalImputerを作成する
func NewCategoricalImputer() *CategoricalImputer {
	return &CategoricalImputer{}
}

// Fit は非欠損値から最頻値を学習する。
// missingは各要素が欠損かどうかを示す（valuesと同じ長さ）。
func (imp *CategoricalImputer) Fit(values []string, missing []bool) error {
	if len(values) != len(missing) {
		return errors.NewDimensionError("CategoricalImputer.Fit", len(values), len(missing), 0)
	}
	if imp.FillValue != "" {
		imp.Statistic = imp.FillValue
		imp.setFitted()
		return nil
	}

	counts := make(map[string]int)
	for i, v := range values {
		if missing[i] {
			continue
		}
		counts[v]++
	}
	if len(counts) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "CategoricalImputer.Fit")
	}

	best := ""
	bestCount := -1
	for v, c := range counts {
		// 同数の場合は辞書順で最小の値を選ぶ（決定的にするため）
		if c > bestCount || (c == bestCount && v < best) {
			best = v
			bestCount = c
		}
	}
	imp.Statistic = best
	imp.setFitted()
	return nil
}

// Transform は欠損位置を補完値で置き換えた新しいスライスを返す
func (imp *CategoricalImputer) Transform(values []string, missing []bool) ([]string, error) {
	if !imp.IsFitted() {
		return nil, errors.NewNotFittedError("CategoricalImputer", "Transform")
	}
	if len(values) != len(missing) {
		return nil, errors.NewDimensionError("CategoricalImputer.Transform", len(values), len(missing), 0)
	}
	out := make([]string, len(values))
	for i, v := range values {
		if missing[i] {
			out[i] = imp.Statistic
		} else {
			out[i] = v
		}
	}
	return out, nil
}

// FitTransform は学習と変換を同時に行う
func (imp *CategoricalImputer) FitTransform(values []string, missing []bool) ([]string, error) {
	if err := imp.Fit(values, missing); err != nil {
		return nil, err
	}
	return imp.Transform(values, missing)
}

// dropNaN はNaNを除いたコピーを返す
func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// median は中央値を返す。要素数が偶数の場合は中央2値の平均。
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mostFrequent は最頻値を返す。同数の場合は小さい値を選ぶ。
func mostFrequent(values []float64) float64 {
	counts := make(map[float64]int)
	for _, v := range values {
		counts[v]++
	}
	best := math.Inf(1)
	bestCount := -1
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best = v
			bestCount = c
		}
	}
	return best
}
