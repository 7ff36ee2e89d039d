package visualization

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/edakit/edakit/pkg/errors"
)

// BarChart はカテゴリごとの値の棒グラフをPNGとして書き出す
//
// パラメータ:
//   - labels: 各棒のラベル
//   - values: 各棒の高さ（labelsと同じ長さ）
//   - path: 出力PNGのパス
func BarChart(labels []string, values []float64, path string, opts ChartOptions) (string, error) {
	if len(labels) == 0 {
		return "", errors.Wrap(errors.ErrEmptyData, "visualization.BarChart")
	}
	if len(labels) != len(values) {
		return "", errors.NewDimensionError("BarChart", len(labels), len(values), 0)
	}

	opts = opts.withDefaults()
	p := plot.New()
	opts.apply(p)

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return "", errors.Wrap(err, "visualization: build bar chart")
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(1)
	p.Add(bars)
	p.NominalX(labels...)

	return save(p, opts, path, "bar")
}
