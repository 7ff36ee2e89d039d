package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"

	"github.com/edakit/edakit/pkg/errors"
	"github.com/edakit/edakit/pkg/log"
)

// naTokens は欠損値として扱う文字列表現
var naTokens = []string{"", "NA", "NaN", "null", "NULL"}

// Load はCSVファイルからデータセットを読み込む。
// 先頭行をヘッダとして扱い、列の型は自動検出する。
//
// パラメータ:
//   - path: CSVファイルのパス
//
// 戻り値:
//   - *Dataset: 読み込まれたデータセット
//   - error: ファイルが存在しない場合・パースに失敗した場合はLoadError
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := "read"
		if os.IsNotExist(err) {
			kind = "not_found"
		}
		return nil, errors.NewLoadError(path, kind, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(naTokens),
	)
	if df.Err != nil {
		return nil, errors.NewLoadError(path, "parse", df.Err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ds := New(df, name)

	rows, cols := ds.Shape()
	log.GetLoggerWithName("dataset").Info("dataset loaded",
		log.SourceKey, path,
		log.RowsKey, rows,
		log.ColsKey, cols,
	)
	return ds, nil
}

// LoadXLSX はExcelワークブックの1シートからデータセットを読み込む。
// シートの先頭行をヘッダとして扱う。
//
// パラメータ:
//   - path: xlsxファイルのパス
//   - sheet: シート名（空の場合は最初のシート）
func LoadXLSX(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		kind := "read"
		if os.IsNotExist(err) {
			kind = "not_found"
		}
		return nil, errors.NewLoadError(path, kind, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewLoadError(path, "parse", err)
	}
	if len(rows) < 2 {
		return nil, errors.NewLoadError(path, "parse", errors.ErrEmptyData)
	}

	// GetRowsは行末の空セルを切り詰めるため、矩形に揃える
	width := len(rows[0])
	records := make([][]string, len(rows))
	for i, row := range rows {
		rec := make([]string, width)
		copy(rec, row)
		records[i] = rec
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(naTokens),
	)
	if df.Err != nil {
		return nil, errors.NewLoadError(path, "parse", df.Err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ds := New(df, name)

	nrows, ncols := ds.Shape()
	log.GetLoggerWithName("dataset").Info("dataset loaded",
		log.SourceKey, path,
		log.RowsKey, nrows,
		log.ColsKey, ncols,
	)
	return ds, nil
}
