// Package analysis は探索的データ分析のパイプラインを提供します。
// 各分析は load → clean → describe → plot → test の直列な手順で、
// コンソールへのテキストレポートとPNGチャート、およびExcelワークブックを
// 生成して終了します。
package analysis

import (
	"io"
	"path/filepath"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/internal/config"
	"github.com/edakit/edakit/pkg/log"
	"github.com/edakit/edakit/report"
	"github.com/edakit/edakit/stats"
	"github.com/edakit/edakit/visualization"
)

// inspect はデータセットの基本情報（形状・先頭行・欠損・記述統計）を
// レポートに書き出す
func inspect(w *report.Writer, ds *dataset.Dataset) ([]stats.ColumnSummary, error) {
	w.Section("dataset")
	w.Shape(ds)

	w.Section("head")
	w.Head(ds, 5)

	w.Section("missing values")
	w.MissingCounts(ds)

	summaries, err := stats.Describe(ds)
	if err != nil {
		return nil, err
	}
	w.Section("descriptive statistics")
	w.Describe(summaries)
	return summaries, nil
}

// correlationHeatmap は数値列の相関行列ヒートマップを描画する
func correlationHeatmap(ds *dataset.Dataset, cfg *config.Config, name string, columns ...string) (string, error) {
	labels, corr, err := stats.CorrelationMatrix(ds, columns...)
	if err != nil {
		return "", err
	}
	return visualization.Heatmap(corr, labels, chartPath(cfg, name), visualization.ChartOptions{
		Title: "correlation matrix",
	})
}

// pairPlot は数値列（最大5列）の散布図行列を描画する
func pairPlot(ds *dataset.Dataset, cfg *config.Config, name string, columns []string) (string, error) {
	if len(columns) > 5 {
		columns = columns[:5]
	}
	vectors := make([][]float64, len(columns))
	for i, col := range columns {
		s, err := ds.Column(col)
		if err != nil {
			return "", err
		}
		vectors[i] = s.Float()
	}
	return visualization.PairPlot(columns, vectors, chartPath(cfg, name), visualization.ChartOptions{
		Width:  10 * vg.Inch,
		Height: 10 * vg.Inch,
	})
}

// chartPath は出力ディレクトリ内のチャートパスを返す
func chartPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.OutDir, name)
}

// stepTimer はステップの所要時間をログに記録する
func stepTimer(logger log.Logger, step string) func() {
	start := time.Now()
	return func() {
		logger.Debug("step finished",
			log.StepKey, step,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
}

// Runner は分析パイプラインの共通シグネチャ
type Runner func(cfg *config.Config, out io.Writer) error
