package analysis

import (
	"io"
	"os"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/internal/config"
	"github.com/edakit/edakit/pkg/errors"
	"github.com/edakit/edakit/pkg/log"
	"github.com/edakit/edakit/preprocessing"
	"github.com/edakit/edakit/report"
	"github.com/edakit/edakit/stats"
	"github.com/edakit/edakit/visualization"
)

// 小売価格データセットの列名
const (
	colCategory  = "category"
	colUnitPrice = "unit_price"
	colQuantity  = "quantity"
	colFreight   = "freight_price"
	colRating    = "product_rating"
)

// Retail は小売価格データセットの探索的分析を実行する。
//
// 手順: CSV読み込み → 欠損処理（疎な列の削除・中央値/最頻値補完）→
// 記述統計の出力 → チャート描画（ヒストグラム・棒・散布図・箱ひげ・
// 相関ヒートマップ・ペアプロット）→ カテゴリ別集計 → ワークブック出力。
func Retail(cfg *config.Config, out io.Writer) error {
	logger := log.GetLogger().With(log.AnalysisKey, "retail")
	defer stepTimer(logger, "all")()

	// データフォルダの存在確認。無ければここで打ち切る。
	if _, err := os.Stat(cfg.DataDir); err != nil {
		return errors.NewLoadError(cfg.DataDir, "not_found", err)
	}

	ds, err := dataset.Load(cfg.RetailPath())
	if err != nil {
		return err
	}
	w := report.NewWriter(out)
	w.Line("retail price analysis: %s", cfg.RetailPath())

	// 欠損処理
	ds, dropped, err := preprocessing.DropSparseColumns(ds, cfg.SparseThreshold)
	if err != nil {
		return err
	}
	if len(dropped) > 0 {
		w.Line("dropped sparse columns: %v", dropped)
	}
	for _, col := range ds.NumericColumns() {
		ratio, err := ds.MissingRatio(col)
		if err != nil {
			return err
		}
		if ratio == 0 {
			continue
		}
		ds, err = preprocessing.ImputeNumericColumn(ds, col, preprocessing.StrategyMedian)
		if err != nil {
			return err
		}
	}
	for _, col := range ds.CategoricalColumns() {
		ratio, err := ds.MissingRatio(col)
		if err != nil {
			return err
		}
		if ratio == 0 {
			continue
		}
		ds, err = preprocessing.ImputeCategoricalColumn(ds, col)
		if err != nil {
			return err
		}
	}

	summaries, err := inspect(w, ds)
	if err != nil {
		return err
	}

	// カテゴリ別の集計
	groups, err := stats.GroupMeans(ds, colCategory, colUnitPrice, colQuantity)
	if err != nil {
		return err
	}
	w.Section("mean price and quantity by category")
	w.GroupMeans(colCategory, groups, []string{colUnitPrice, colQuantity})

	// チャートの描画。dataframeの添字操作はpanicし得るため変換して返す。
	err = errors.SafeExecute("retail charts", func() error {
		prices, err := ds.NumericValues(colUnitPrice)
		if err != nil {
			return err
		}
		if _, err := visualization.Histogram(prices, cfg.HistogramBins,
			chartPath(cfg, "retail_price_hist.png"), visualization.ChartOptions{
				Title: "unit price distribution", XLabel: "unit price", YLabel: "count",
			}); err != nil {
			return err
		}

		labels, counts, err := stats.ValueCounts(ds, colCategory)
		if err != nil {
			return err
		}
		countValues := make([]float64, len(counts))
		for i, c := range counts {
			countValues[i] = float64(c)
		}
		if _, err := visualization.BarChart(labels, countValues,
			chartPath(cfg, "retail_category_counts.png"), visualization.ChartOptions{
				Title: "products per category", XLabel: "category", YLabel: "count",
			}); err != nil {
			return err
		}

		priceCol, err := ds.Column(colUnitPrice)
		if err != nil {
			return err
		}
		qtyCol, err := ds.Column(colQuantity)
		if err != nil {
			return err
		}
		if _, err := visualization.Scatter(priceCol.Float(), qtyCol.Float(),
			chartPath(cfg, "retail_price_vs_quantity.png"), visualization.ChartOptions{
				Title: "price vs quantity", XLabel: "unit price", YLabel: "quantity",
			}); err != nil {
			return err
		}

		boxLabels, boxGroups, err := stats.GroupValues(ds, colCategory, colUnitPrice)
		if err != nil {
			return err
		}
		if _, err := visualization.BoxPlot(boxLabels, boxGroups,
			chartPath(cfg, "retail_price_by_category_box.png"), visualization.ChartOptions{
				Title: "unit price by category", XLabel: "category", YLabel: "unit price",
			}); err != nil {
			return err
		}

		if _, err := correlationHeatmap(ds, cfg, "retail_correlation.png"); err != nil {
			return err
		}
		_, err = pairPlot(ds, cfg, "retail_pairplot.png", ds.NumericColumns())
		return err
	})
	if err != nil {
		return err
	}

	if cfg.ExportWorkbook {
		wb := report.NewWorkbook()
		defer wb.Close()
		if err := wb.AddDescribeSheet("describe", summaries); err != nil {
			return err
		}
		if err := wb.AddGroupSheet("by_category", colCategory, groups,
			[]string{colUnitPrice, colQuantity}); err != nil {
			return err
		}
		if err := wb.Save(chartPath(cfg, "retail_summary.xlsx")); err != nil {
			return err
		}
	}

	logger.Info("analysis finished", log.StepKey, "done")
	return nil
}
