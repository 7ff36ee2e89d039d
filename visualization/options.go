// Package visualization はgonum/plotによるチャート描画を提供します。
// すべてのチャートはPNGファイルとして出力ディレクトリに書き出され、
// 描画関数は書き出したパスを返します。
package visualization

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/edakit/edakit/pkg/errors"
	"github.com/edakit/edakit/pkg/log"
)

// ChartOptions はチャート共通の見た目の設定
type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string

	// Width, Height は描画領域のサイズ（ゼロ値の場合はデフォルト）
	Width  vg.Length
	Height vg.Length
}

const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4.5 * vg.Inch
)

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width == 0 {
		o.Width = defaultWidth
	}
	if o.Height == 0 {
		o.Height = defaultHeight
	}
	return o
}

// apply はタイトルと軸ラベルをプロットに設定する
func (o ChartOptions) apply(p *plot.Plot) {
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
}

// save はプロットをPNGとして書き出し、パスを返す
func save(p *plot.Plot, opts ChartOptions, path, kind string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(err, "visualization: create output directory")
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return "", errors.Wrapf(err, "visualization: save %s", kind)
	}
	log.GetLoggerWithName("visualization").Info("chart written",
		log.ChartKindKey, kind,
		log.ChartPathKey, path,
	)
	return path, nil
}
