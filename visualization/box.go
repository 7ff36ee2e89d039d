package visualization

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/edakit/edakit/pkg/errors"
)

// BoxPlot はグループごとの箱ひげ図をPNGとして書き出す。
// 各グループが1つの箱になる。NaNは除外される。
//
// パラメータ:
//   - labels: 各グループのラベル
//   - groups: 各グループの観測値（labelsと同じ長さ）
func BoxPlot(labels []string, groups [][]float64, path string, opts ChartOptions) (string, error) {
	if len(labels) == 0 {
		return "", errors.Wrap(errors.ErrEmptyData, "visualization.BoxPlot")
	}
	if len(labels) != len(groups) {
		return "", errors.NewDimensionError("BoxPlot", len(labels), len(groups), 0)
	}

	opts = opts.withDefaults()
	p := plot.New()
	opts.apply(p)

	for i, group := range groups {
		observed := filterNaN(group)
		if len(observed) == 0 {
			return "", errors.NewValueError("BoxPlot",
				"group "+labels[i]+" has no observed values")
		}
		box, err := plotter.NewBoxPlot(vg.Points(28), float64(i), plotter.Values(observed))
		if err != nil {
			return "", errors.Wrap(err, "visualization: build box plot")
		}
		p.Add(box)
	}
	p.NominalX(labels...)

	return save(p, opts, path, "box")
}
