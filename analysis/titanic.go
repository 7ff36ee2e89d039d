package analysis

import (
	"io"

	"github.com/go-gota/gota/series"

	"github.com/edakit/edakit/dataset"
	"github.com/edakit/edakit/internal/config"
	"github.com/edakit/edakit/pkg/errors"
	"github.com/edakit/edakit/pkg/log"
	"github.com/edakit/edakit/preprocessing"
	"github.com/edakit/edakit/report"
	"github.com/edakit/edakit/stats"
	"github.com/edakit/edakit/visualization"
)

// 旅客データセットの列名
const (
	colSurvived   = "Survived"
	colPclass     = "Pclass"
	colSex        = "Sex"
	colAge        = "Age"
	colSibSp      = "SibSp"
	colParch      = "Parch"
	colFare       = "Fare"
	colEmbarked   = "Embarked"
	colFamilySize = "FamilySize"
	colSexCode    = "SexCode"
	colFareScaled = "FareScaled"
)

// Titanic は同梱の旅客生存データセットの探索的分析を実行する。
//
// 手順: 同梱データの読み込み → 欠損処理（疎な列の削除・年齢の中央値補完・
// 乗船港の最頻値補完）→ 派生列（家族人数・性別コード・運賃の標準化コピー）→
// 記述統計と乗船港別の集計 → カイ二乗検定（性別×生存）と
// クラスカル・ウォリス検定（客室クラス間の年齢分布）→ チャート描画 →
// 要約の出力。
func Titanic(cfg *config.Config, out io.Writer) error {
	logger := log.GetLogger().With(log.AnalysisKey, "titanic")
	defer stepTimer(logger, "all")()

	ds, err := dataset.Titanic()
	if err != nil {
		return err
	}
	w := report.NewWriter(out)
	w.Line("passenger survival analysis: bundled dataset %q", ds.Name())

	// 欠損処理。Cabinは欠損率が高いためここで落ちる。
	ds, dropped, err := preprocessing.DropSparseColumns(ds, cfg.SparseThreshold)
	if err != nil {
		return err
	}
	if len(dropped) > 0 {
		w.Line("dropped sparse columns: %v", dropped)
	}
	ds, err = preprocessing.ImputeNumericColumn(ds, colAge, preprocessing.StrategyMedian)
	if err != nil {
		return err
	}
	ds, err = preprocessing.ImputeCategoricalColumn(ds, colEmbarked)
	if err != nil {
		return err
	}

	// 派生列
	ds, err = withFamilySize(ds)
	if err != nil {
		return err
	}
	ds, _, err = preprocessing.EncodedColumn(ds, colSex, colSexCode)
	if err != nil {
		return err
	}
	ds, err = preprocessing.ScaledColumn(ds, colFare, colFareScaled, preprocessing.NewStandardScaler())
	if err != nil {
		return err
	}

	summaries, err := inspect(w, ds)
	if err != nil {
		return err
	}

	// 乗船港別の集計
	groups, err := stats.GroupMeans(ds, colEmbarked, colSurvived, colFare)
	if err != nil {
		return err
	}
	w.Section("survival rate and fare by embarkation port")
	w.GroupMeans(colEmbarked, groups, []string{colSurvived, colFare})

	// 仮説検定
	ct, err := stats.Crosstab(ds, colSex, colSurvived)
	if err != nil {
		return err
	}
	w.Section("sex vs survival")
	w.Crosstab(ct)

	chiSquare, err := stats.ChiSquareTest(ct)
	if err != nil {
		return err
	}
	w.TestResult(chiSquare)
	logger.Info("hypothesis test",
		log.TestNameKey, chiSquare.Name,
		log.StatisticKey, chiSquare.Statistic,
		log.DofKey, chiSquare.DoF,
		log.PValueKey, chiSquare.PValue,
	)

	_, ageByClass, err := stats.GroupValues(ds, colPclass, colAge)
	if err != nil {
		return err
	}
	kruskal, err := stats.KruskalWallis(ageByClass)
	if err != nil {
		return err
	}
	w.Section("age across passenger classes")
	w.TestResult(kruskal)
	logger.Info("hypothesis test",
		log.TestNameKey, kruskal.Name,
		log.StatisticKey, kruskal.Statistic,
		log.DofKey, kruskal.DoF,
		log.PValueKey, kruskal.PValue,
	)

	// チャートの描画
	err = errors.SafeExecute("titanic charts", func() error {
		ages, err := ds.NumericValues(colAge)
		if err != nil {
			return err
		}
		if _, err := visualization.Histogram(ages, cfg.HistogramBins,
			chartPath(cfg, "titanic_age_hist.png"), visualization.ChartOptions{
				Title: "age distribution", XLabel: "age", YLabel: "count",
			}); err != nil {
			return err
		}

		boxLabels, fareByClass, err := stats.GroupValues(ds, colPclass, colFare)
		if err != nil {
			return err
		}
		if _, err := visualization.BoxPlot(boxLabels, fareByClass,
			chartPath(cfg, "titanic_fare_by_class_box.png"), visualization.ChartOptions{
				Title: "fare by passenger class", XLabel: "class", YLabel: "fare",
			}); err != nil {
			return err
		}

		sexGroups, err := stats.GroupMeans(ds, colSex, colSurvived)
		if err != nil {
			return err
		}
		labels := make([]string, len(sexGroups))
		rates := make([]float64, len(sexGroups))
		for i, g := range sexGroups {
			labels[i] = g.Group
			rates[i] = g.Means[colSurvived]
		}
		if _, err := visualization.BarChart(labels, rates,
			chartPath(cfg, "titanic_survival_by_sex.png"), visualization.ChartOptions{
				Title: "survival rate by sex", XLabel: "sex", YLabel: "survival rate",
			}); err != nil {
			return err
		}

		ageCol, err := ds.Column(colAge)
		if err != nil {
			return err
		}
		fareCol, err := ds.Column(colFare)
		if err != nil {
			return err
		}
		sexCol, err := ds.Column(colSex)
		if err != nil {
			return err
		}
		if _, err := visualization.ScatterByCategory(ageCol.Float(), fareCol.Float(), sexCol.Records(),
			chartPath(cfg, "titanic_age_vs_fare.png"), visualization.ChartOptions{
				Title: "age vs fare", XLabel: "age", YLabel: "fare",
			}); err != nil {
			return err
		}

		if _, err := correlationHeatmap(ds, cfg, "titanic_correlation.png",
			colSurvived, colPclass, colAge, colFare, colFamilySize, colSexCode); err != nil {
			return err
		}
		_, err = pairPlot(ds, cfg, "titanic_pairplot.png",
			[]string{colAge, colFare, colFamilySize, colPclass})
		return err
	})
	if err != nil {
		return err
	}

	// 要約
	if err := narrative(w, ds, chiSquare, kruskal); err != nil {
		return err
	}

	if cfg.ExportWorkbook {
		wb := report.NewWorkbook()
		defer wb.Close()
		if err := wb.AddDescribeSheet("describe", summaries); err != nil {
			return err
		}
		if err := wb.AddGroupSheet("by_port", colEmbarked, groups,
			[]string{colSurvived, colFare}); err != nil {
			return err
		}
		if err := wb.AddCrosstabSheet("sex_vs_survival", ct); err != nil {
			return err
		}
		if err := wb.AddTestsSheet("tests", []*stats.TestResult{chiSquare, kruskal}); err != nil {
			return err
		}
		if err := wb.Save(chartPath(cfg, "titanic_summary.xlsx")); err != nil {
			return err
		}
	}

	logger.Info("analysis finished", log.StepKey, "done")
	return nil
}

// withFamilySize はSibSpとParchから家族人数の派生列を作る
func withFamilySize(ds *dataset.Dataset) (*dataset.Dataset, error) {
	sibsp, err := ds.Column(colSibSp)
	if err != nil {
		return nil, err
	}
	parch, err := ds.Column(colParch)
	if err != nil {
		return nil, err
	}
	sv, pv := sibsp.Float(), parch.Float()
	familySize := make([]int, len(sv))
	for i := range sv {
		familySize[i] = int(sv[i]) + int(pv[i]) + 1
	}
	return ds.WithColumn(series.New(familySize, series.Int, colFamilySize))
}

// narrative は計算済みの統計量から要約文を出力する
func narrative(w *report.Writer, ds *dataset.Dataset, chiSquare, kruskal *stats.TestResult) error {
	survivedCol, err := ds.Column(colSurvived)
	if err != nil {
		return err
	}
	overall := mean(survivedCol.Float())

	sexGroups, err := stats.GroupMeans(ds, colSex, colSurvived)
	if err != nil {
		return err
	}

	w.Section("summary")
	w.Line("overall survival: %.1f%% of %d passengers", overall*100, survivedCol.Len())
	for _, g := range sexGroups {
		w.Line("%ss: %.1f%% survival (%d passengers)", g.Group, g.Means[colSurvived]*100, g.Count)
	}
	if chiSquare.Significant(0.05) {
		w.Line("survival depends on sex (chi-square p=%.4g)", chiSquare.PValue)
	} else {
		w.Line("no evidence that survival depends on sex (chi-square p=%.4g)", chiSquare.PValue)
	}
	if kruskal.Significant(0.05) {
		w.Line("age distributions differ across passenger classes (kruskal-wallis p=%.4g)", kruskal.PValue)
	} else {
		w.Line("no evidence that age differs across passenger classes (kruskal-wallis p=%.4g)", kruskal.PValue)
	}
	return nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
