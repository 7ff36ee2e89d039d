package visualization

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/edakit/edakit/pkg/errors"
	"github.com/edakit/edakit/pkg/log"
)

// PairPlot は複数の数値変数の散布図行列をPNGとして書き出す。
// 対角にはヒストグラム、非対角には散布図を描く。
//
// パラメータ:
//   - names: 変数名（2つ以上）
//   - vectors: 各変数の値（namesと同じ長さ、各ベクトルは同じ長さ）
//   - path: 出力PNGのパス
func PairPlot(names []string, vectors [][]float64, path string, opts ChartOptions) (string, error) {
	n := len(names)
	if n < 2 {
		return "", errors.NewValueError("PairPlot", "need at least two variables")
	}
	if len(vectors) != n {
		return "", errors.NewDimensionError("PairPlot", n, len(vectors), 1)
	}
	rows := len(vectors[0])
	for _, vec := range vectors {
		if len(vec) != rows {
			return "", errors.NewDimensionError("PairPlot", rows, len(vec), 0)
		}
	}

	plots := make([][]*plot.Plot, n)
	for i := 0; i < n; i++ {
		plots[i] = make([]*plot.Plot, n)
		for j := 0; j < n; j++ {
			p := plot.New()
			p.X.Label.Text = names[j]
			p.Y.Label.Text = names[i]

			if i == j {
				observed := filterNaN(vectors[i])
				if len(observed) == 0 {
					return "", errors.NewValueError("PairPlot",
						"variable "+names[i]+" has no observed values")
				}
				h, err := plotter.NewHist(plotter.Values(observed), 12)
				if err != nil {
					return "", errors.Wrap(err, "visualization: pair plot histogram")
				}
				h.FillColor = plotutil.Color(0)
				p.Y.Label.Text = "count"
				p.Add(h)
			} else {
				xys, err := pairedXYs(vectors[j], vectors[i], "PairPlot")
				if err != nil {
					return "", err
				}
				s, err := plotter.NewScatter(xys)
				if err != nil {
					return "", errors.Wrap(err, "visualization: pair plot scatter")
				}
				s.GlyphStyle.Color = plotutil.Color(2)
				s.GlyphStyle.Radius = vg.Points(1.5)
				p.Add(s)
			}
			plots[i][j] = p
		}
	}

	opts = opts.withDefaults()
	img := vgimg.New(opts.Width, opts.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: n,
		Cols: n,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(err, "visualization: create output directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "visualization: create pair plot file")
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return "", errors.Wrap(err, "visualization: write pair plot")
	}

	log.GetLoggerWithName("visualization").Info("chart written",
		log.ChartKindKey, "pairplot",
		log.ChartPathKey, path,
	)
	return path, nil
}
