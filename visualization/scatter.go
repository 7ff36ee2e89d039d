package visualization

import (
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/edakit/edakit/pkg/errors"
)

// Scatter は2変数の散布図をPNGとして書き出す。
// どちらかの値が欠損している点は除外される。
func Scatter(x, y []float64, path string, opts ChartOptions) (string, error) {
	xys, err := pairedXYs(x, y, "Scatter")
	if err != nil {
		return "", err
	}

	opts = opts.withDefaults()
	p := plot.New()
	opts.apply(p)

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return "", errors.Wrap(err, "visualization: build scatter")
	}
	s.GlyphStyle.Color = plotutil.Color(0)
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)

	return save(p, opts, path, "scatter")
}

// ScatterByCategory はカテゴリごとに色分けした散布図をPNGとして書き出す。
// カテゴリは凡例に表示される。
//
// パラメータ:
//   - x, y: 座標値
//   - categories: 各点のカテゴリ（x, yと同じ長さ）
func ScatterByCategory(x, y []float64, categories []string, path string, opts ChartOptions) (string, error) {
	if len(x) != len(y) || len(x) != len(categories) {
		return "", errors.NewDimensionError("ScatterByCategory", len(x), len(y), 0)
	}

	grouped := make(map[string]plotter.XYs)
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || categories[i] == "" {
			continue
		}
		grouped[categories[i]] = append(grouped[categories[i]], plotter.XY{X: x[i], Y: y[i]})
	}
	if len(grouped) == 0 {
		return "", errors.Wrap(errors.ErrEmptyData, "visualization.ScatterByCategory")
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	opts = opts.withDefaults()
	p := plot.New()
	opts.apply(p)
	p.Legend.Top = true

	for i, name := range names {
		s, err := plotter.NewScatter(grouped[name])
		if err != nil {
			return "", errors.Wrap(err, "visualization: build scatter")
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(name, s)
	}

	return save(p, opts, path, "scatter")
}

// pairedXYs は欠損を除いた点列を作る
func pairedXYs(x, y []float64, op string) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, errors.NewDimensionError(op, len(x), len(y), 0)
	}
	xys := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(xys) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "visualization."+op)
	}
	return xys, nil
}
