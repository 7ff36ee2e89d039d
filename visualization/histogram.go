package visualization

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/edakit/edakit/pkg/errors"
)

// Histogram は数値データのヒストグラムをPNGとして書き出す。
// NaNは描画から除外される。
//
// パラメータ:
//   - values: 対象の値
//   - bins: ビン数（1以上）
//   - path: 出力PNGのパス
func Histogram(values []float64, bins int, path string, opts ChartOptions) (string, error) {
	if bins < 1 {
		return "", errors.NewValidationError("bins", "must be at least 1", bins)
	}
	observed := filterNaN(values)
	if len(observed) == 0 {
		return "", errors.Wrap(errors.ErrEmptyData, "visualization.Histogram")
	}

	opts = opts.withDefaults()
	p := plot.New()
	opts.apply(p)

	h, err := plotter.NewHist(plotter.Values(observed), bins)
	if err != nil {
		return "", errors.Wrap(err, "visualization: build histogram")
	}
	h.FillColor = plotutil.Color(0)
	p.Add(h)

	return save(p, opts, path, "histogram")
}

// filterNaN はNaNを除いたコピーを返す
func filterNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
