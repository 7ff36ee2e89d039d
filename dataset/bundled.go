package dataset

import (
	"bytes"
	_ "embed"

	"github.com/go-gota/gota/dataframe"

	"github.com/edakit/edakit/pkg/errors"
)

//go:embed titanic.csv
var titanicCSV []byte

// bundled は名前で引ける同梱データセットの一覧
var bundled = map[string][]byte{
	"titanic": titanicCSV,
}

// BundledNames は同梱データセット名の一覧を返す
func BundledNames() []string {
	names := make([]string, 0, len(bundled))
	for name := range bundled {
		names = append(names, name)
	}
	return names
}

// LoadBundled は同梱データセットを名前で読み込む
//
// パラメータ:
//   - name: データセット名（例: "titanic"）
func LoadBundled(name string) (*Dataset, error) {
	raw, ok := bundled[name]
	if !ok {
		return nil, errors.Newf("edakit: unknown bundled dataset %q (available: %v)", name, BundledNames())
	}
	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(naTokens),
	)
	if df.Err != nil {
		return nil, errors.NewLoadError(name, "parse", df.Err)
	}
	return New(df, name), nil
}

// Titanic は同梱の旅客生存データセットを読み込む
func Titanic() (*Dataset, error) {
	return LoadBundled("titanic")
}
