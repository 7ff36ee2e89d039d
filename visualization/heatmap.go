package visualization

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/edakit/edakit/pkg/errors"
)

// matrixGrid は行列をplotter.GridXYZとして提供する。
// 行0が上に描かれるよう、Y軸は行を反転して返す。
type matrixGrid struct {
	m mat.Matrix
}

func (g matrixGrid) Dims() (int, int) {
	r, c := g.m.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

// Heatmap は行列のヒートマップをPNGとして書き出す。
// 相関行列の可視化を想定し、[-1, 1]中心の発散カラーマップを使用する。
//
// パラメータ:
//   - m: 対象の行列（NaNセルは空白として描画される）
//   - labels: 行・列の軸ラベル（正方行列を想定、nilの場合は省略）
func Heatmap(m mat.Matrix, labels []string, path string, opts ChartOptions) (string, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return "", errors.Wrap(errors.ErrEmptyData, "visualization.Heatmap")
	}
	if labels != nil && len(labels) != cols {
		return "", errors.NewDimensionError("Heatmap", cols, len(labels), 1)
	}

	opts = opts.withDefaults()
	p := plot.New()
	opts.apply(p)

	// 相関係数向けの対称な色スケール
	colorMap := moreland.SmoothBlueRed()
	colorMap.SetMin(-1)
	colorMap.SetMax(1)
	pal := colorMap.Palette(255)

	h := plotter.NewHeatMap(matrixGrid{m: m}, pal)
	h.Min = -1
	h.Max = 1
	p.Add(h)

	if labels != nil {
		xTicks := make([]plot.Tick, cols)
		for i := 0; i < cols; i++ {
			xTicks[i] = plot.Tick{Value: float64(i), Label: labels[i]}
		}
		yTicks := make([]plot.Tick, rows)
		for i := 0; i < rows; i++ {
			yTicks[i] = plot.Tick{Value: float64(i), Label: labels[rows-1-i]}
		}
		p.X.Tick.Marker = plot.ConstantTicks(xTicks)
		p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	}

	return save(p, opts, path, "heatmap")
}
