package preprocessing

import (
	"github.com/go-gota/gota/series"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/pkg/errors"
	"github.com/edakit/edakit/pkg/log"
)

// Dataset単位のヘルパー群。個々の変換器を列に適用し、
// 変換結果の列を持つ新しいDatasetを返す。

// DropSparseColumns は欠損率がthresholdを超える列を取り除く。
// 取り除いた列名の一覧も返す。
//
// パラメータ:
//   - ds: 対象データセット
//   - threshold: 欠損率の閾値（例: 0.5で欠損が半分を超える列を削除）
func DropSparseColumns(ds *dataset.Dataset, threshold float64) (*dataset.Dataset, []string, error) {
	if threshold < 0 || threshold > 1 {
		return nil, nil, errors.NewValidationError("threshold", "must be in [0, 1]", threshold)
	}
	var sparse []string
	for _, name := range ds.Columns() {
		ratio, err := ds.MissingRatio(name)
		if err != nil {
			return nil, nil, err
		}
		if ratio > threshold {
			sparse = append(sparse, name)
		}
	}
	if len(sparse) == 0 {
		return ds, nil, nil
	}

	out, err := ds.DropColumns(sparse...)
	if err != nil {
		return nil, nil, err
	}
	log.GetLoggerWithName("preprocessing").Info("dropped sparse columns",
		"columns", sparse,
		"threshold", threshold,
	)
	return out, sparse, nil
}

// ImputeNumericColumn は数値列の欠損を指定の戦略で補完した新しいDatasetを返す
func ImputeNumericColumn(ds *dataset.Dataset, column string, strategy ImputeStrategy) (*dataset.Dataset, error) {
	col, err := ds.Column(column)
	if err != nil {
		return nil, err
	}

	imp := NewSimpleImputer(strategy)
	filled, err := imp.FitTransform(col.Float())
	if err != nil {
		return nil, errors.Wrapf(err, "impute column %q", column)
	}

	log.GetLoggerWithName("preprocessing").Debug("imputed numeric column",
		log.ColumnKey, column,
		"strategy", string(strategy),
		"statistic", imp.Statistic,
	)
	return ds.WithColumn(series.New(filled, series.Float, column))
}

// ImputeCategoricalColumn はカテゴリ列の欠損を最頻値で補完した新しいDatasetを返す
func ImputeCategoricalColumn(ds *dataset.Dataset, column string) (*dataset.Dataset, error) {
	col, err := ds.Column(column)
	if err != nil {
		return nil, err
	}

	values := make([]string, col.Len())
	missing := make([]bool, col.Len())
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		missing[i] = elem.IsNA()
		if !missing[i] {
			values[i] = elem.String()
		}
	}

	imp := NewCategoricalImputer()
	filled, err := imp.FitTransform(values, missing)
	if err != nil {
		return nil, errors.Wrapf(err, "impute column %q", column)
	}

	log.GetLoggerWithName("preprocessing").Debug("imputed categorical column",
		log.ColumnKey, column,
		"statistic", imp.Statistic,
	)
	return ds.WithColumn(series.New(filled, series.String, column))
}

// ScaledColumn は数値列のスケーリング済みコピーをnewNameとして追加した
// 新しいDatasetを返す。元の列は変更されない。
func ScaledColumn(ds *dataset.Dataset, column, newName string, scaler Scaler) (*dataset.Dataset, error) {
	col, err := ds.Column(column)
	if err != nil {
		return nil, err
	}
	scaled, err := scaler.FitTransform(col.Float())
	if err != nil {
		return nil, errors.Wrapf(err, "scale column %q", column)
	}
	return ds.WithColumn(series.New(scaled, series.Float, newName))
}

// EncodedColumn はカテゴリ列の整数コード版をnewNameとして追加した
// 新しいDatasetを返す。欠損を含む列は先に補完しておくこと。
func EncodedColumn(ds *dataset.Dataset, column, newName string) (*dataset.Dataset, *LabelEncoder, error) {
	col, err := ds.Column(column)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < col.Len(); i++ {
		if col.Elem(i).IsNA() {
			return nil, nil, errors.NewValueError("EncodedColumn",
				"column contains missing values; impute before encoding")
		}
	}

	enc := NewLabelEncoder()
	codes, err := enc.FitTransform(col.Records())
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode column %q", column)
	}
	out, err := ds.WithColumn(series.New(codes, series.Int, newName))
	if err != nil {
		return nil, nil, err
	}
	return out, enc, nil
}
