package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/edakit/edakit/pkg/errors"
)

// TestResult は仮説検定の結果
type TestResult struct {
	Name      string
	Statistic float64
	DoF       int
	PValue    float64
}

// String は検定結果の文字列表現を返す
func (r *TestResult) String() string {
	return fmt.Sprintf("%s: statistic=%.4f, dof=%d, p-value=%.6f",
		r.Name, r.Statistic, r.DoF, r.PValue)
}

// Significant はp値が有意水準alphaを下回るかどうかを返す
func (r *TestResult) Significant(alpha float64) bool {
	return r.PValue < alpha
}

// ChiSquareTest は分割表に対するカイ二乗独立性検定を行う。
// scipy.stats.chi2_contingency（補正なし）に相当する。
//
// 期待度数は E[i][j] = 行計 × 列計 / 総計 で計算され、
// 期待度数が5未満のセルがある場合はSmallSampleWarningを発する。
//
// 戻り値:
//   - *TestResult: 統計量・自由度・p値
//   - error: 表が2×2未満の場合、または期待度数に0がある場合
func ChiSquareTest(ct *Contingency) (*TestResult, error) {
	r := len(ct.RowLabels)
	c := len(ct.ColLabels)
	if r < 2 || c < 2 {
		return nil, errors.NewValueError("ChiSquareTest",
			fmt.Sprintf("contingency table must be at least 2x2, got %dx%d", r, c))
	}

	total := ct.Total()
	if total == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "stats.ChiSquareTest")
	}

	rowSums := make([]float64, r)
	colSums := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rowSums[i] += ct.Counts[i][j]
			colSums[j] += ct.Counts[i][j]
		}
	}

	statistic := 0.0
	smallExpected := false
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			expected := rowSums[i] * colSums[j] / total
			if expected == 0 {
				return nil, errors.NewValueError("ChiSquareTest",
					fmt.Sprintf("expected count is zero for cell (%s, %s)", ct.RowLabels[i], ct.ColLabels[j]))
			}
			if expected < 5 {
				smallExpected = true
			}
			diff := ct.Counts[i][j] - expected
			statistic += diff * diff / expected
		}
	}
	if smallExpected {
		errors.Warn(errors.NewSmallSampleWarning("chi-square",
			"one or more cells have expected count below 5"))
	}

	dof := (r - 1) * (c - 1)
	chi2 := distuv.ChiSquared{K: float64(dof)}
	return &TestResult{
		Name:      "chi-square",
		Statistic: statistic,
		DoF:       dof,
		PValue:    chi2.Survival(statistic),
	}, nil
}

// KruskalWallis は複数グループの分布の位置に差があるかを検定する。
// scipy.stats.kruskalに相当し、順位の同順位（tie）補正を行った
// H統計量をカイ二乗分布で近似してp値を計算する。
//
// パラメータ:
//   - groups: 各グループの観測値（2グループ以上、各グループ1件以上）
func KruskalWallis(groups [][]float64) (*TestResult, error) {
	if len(groups) < 2 {
		return nil, errors.NewValueError("KruskalWallis", "need at least two groups")
	}

	n := 0
	for i, g := range groups {
		if len(g) == 0 {
			return nil, errors.NewValueError("KruskalWallis",
				fmt.Sprintf("group %d is empty", i))
		}
		n += len(g)
	}
	if n <= len(groups) {
		return nil, errors.NewValueError("KruskalWallis", "not enough observations")
	}

	// 全観測値をまとめて順位付けする（同順位は平均順位）
	type obs struct {
		value float64
		group int
	}
	all := make([]obs, 0, n)
	for gi, g := range groups {
		for _, v := range g {
			all = append(all, obs{value: v, group: gi})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].value < all[j].value })

	ranks := make([]float64, n)
	tieCorrection := 0.0
	for i := 0; i < n; {
		j := i
		for j < n && all[j].value == all[i].value {
			j++
		}
		// i..j-1 が同順位グループ
		avgRank := float64(i+j+1) / 2 // 順位は1始まり
		for k := i; k < j; k++ {
			ranks[k] = avgRank
		}
		t := float64(j - i)
		tieCorrection += t*t*t - t
		i = j
	}

	rankSums := make([]float64, len(groups))
	for i, o := range all {
		rankSums[o.group] += ranks[i]
	}

	fn := float64(n)
	h := 0.0
	for gi, g := range groups {
		h += rankSums[gi] * rankSums[gi] / float64(len(g))
	}
	h = 12/(fn*(fn+1))*h - 3*(fn+1)

	// 同順位補正
	correction := 1 - tieCorrection/(fn*fn*fn-fn)
	if correction == 0 {
		return nil, errors.NewValueError("KruskalWallis", "all observations are identical")
	}
	h /= correction

	for _, g := range groups {
		if len(g) < 5 {
			errors.Warn(errors.NewSmallSampleWarning("kruskal-wallis",
				"group size below 5; chi-square approximation may be inaccurate"))
			break
		}
	}

	dof := len(groups) - 1
	chi2 := distuv.ChiSquared{K: float64(dof)}
	return &TestResult{
		Name:      "kruskal-wallis",
		Statistic: h,
		DoF:       dof,
		PValue:    chi2.Survival(h),
	}, nil
}
