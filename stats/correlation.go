package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/pkg/errors"
)

// CorrelationMatrix は数値列間のピアソン相関行列を計算する。
// 各ペアについて、両方の値が観測されている行だけを使用する
// （pandasのDataFrame.corr()と同じpairwise complete方式）。
//
// パラメータ:
//   - ds: 対象データセット
//   - columns: 対象の数値列（省略時は全ての数値列）
//
// 戻り値:
//   - []string: 行列の軸に対応する列名
//   - *mat.SymDense: 相関行列。定数列とのペアはNaN。
func CorrelationMatrix(ds *dataset.Dataset, columns ...string) ([]string, *mat.SymDense, error) {
	if len(columns) == 0 {
		columns = ds.NumericColumns()
	}
	if len(columns) < 2 {
		return nil, nil, errors.NewValueError("CorrelationMatrix",
			"need at least two numeric columns")
	}

	vectors := make([][]float64, len(columns))
	for i, name := range columns {
		col, err := ds.Column(name)
		if err != nil {
			return nil, nil, err
		}
		vectors[i] = col.Float()
	}
	n := len(vectors[0])
	for _, vec := range vectors {
		if len(vec) != n {
			return nil, nil, errors.NewDimensionError("CorrelationMatrix", n, len(vec), 0)
		}
	}

	corr := mat.NewSymDense(len(columns), nil)
	for i := range columns {
		corr.SetSym(i, i, 1)
		for j := i + 1; j < len(columns); j++ {
			corr.SetSym(i, j, pairwiseCorrelation(vectors[i], vectors[j]))
		}
	}
	return columns, corr, nil
}

// pairwiseCorrelation は両方が観測されている行だけでピアソン相関を計算する
func pairwiseCorrelation(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for k := range x {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		xs = append(xs, x[k])
		ys = append(ys, y[k])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	// 定数列との相関は未定義
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
