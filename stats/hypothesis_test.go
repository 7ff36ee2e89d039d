package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edakit/edakit/pkg/errors"
)

func TestChiSquareTest(t *testing.T) {
	// all expected counts are 15, chi2 = 4 * 25/15 = 6.6667, dof 1
	ct := &Contingency{
		RowLabels: []string{"a", "b"},
		ColLabels: []string{"x", "y"},
		Counts:    [][]float64{{10, 20}, {20, 10}},
	}

	result, err := ChiSquareTest(ct)
	require.NoError(t, err)

	assert.Equal(t, "chi-square", result.Name)
	assert.Equal(t, 1, result.DoF)
	assert.InDelta(t, 20.0/3.0, result.Statistic, 1e-9)
	assert.InDelta(t, 0.00982, result.PValue, 1e-4)
	assert.True(t, result.Significant(0.05))
}

func TestChiSquareTestIndependent(t *testing.T) {
	// perfectly proportional table: statistic 0, p-value 1
	ct := &Contingency{
		RowLabels: []string{"a", "b"},
		ColLabels: []string{"x", "y"},
		Counts:    [][]float64{{10, 20}, {20, 40}},
	}

	result, err := ChiSquareTest(ct)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.Statistic, 1e-9)
	assert.InDelta(t, 1.0, result.PValue, 1e-9)
	assert.False(t, result.Significant(0.05))
}

func TestChiSquareTestTooSmall(t *testing.T) {
	ct := &Contingency{
		RowLabels: []string{"a"},
		ColLabels: []string{"x", "y"},
		Counts:    [][]float64{{1, 2}},
	}
	_, err := ChiSquareTest(ct)
	assert.Error(t, err)
}

func TestChiSquareTestZeroExpected(t *testing.T) {
	ct := &Contingency{
		RowLabels: []string{"a", "b"},
		ColLabels: []string{"x", "y"},
		Counts:    [][]float64{{0, 0}, {5, 5}},
	}
	_, err := ChiSquareTest(ct)
	assert.Error(t, err)
}

func TestChiSquareTestSmallSampleWarning(t *testing.T) {
	var warned error
	errors.SetWarningHandler(func(w error) { warned = w })
	defer errors.SetWarningHandler(func(w error) {})

	ct := &Contingency{
		RowLabels: []string{"a", "b"},
		ColLabels: []string{"x", "y"},
		Counts:    [][]float64{{2, 3}, {3, 2}},
	}
	_, err := ChiSquareTest(ct)
	require.NoError(t, err)

	var small *errors.SmallSampleWarning
	require.Error(t, warned)
	assert.True(t, errors.As(warned, &small))
}

func TestKruskalWallis(t *testing.T) {
	// non-overlapping groups, no ties: H = 7.2, dof 2
	groups := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	result, err := KruskalWallis(groups)
	require.NoError(t, err)

	assert.Equal(t, "kruskal-wallis", result.Name)
	assert.Equal(t, 2, result.DoF)
	assert.InDelta(t, 7.2, result.Statistic, 1e-9)
	assert.InDelta(t, 0.02732, result.PValue, 1e-4)
	assert.True(t, result.Significant(0.05))
}

func TestKruskalWallisInterleaved(t *testing.T) {
	// interleaved groups barely differ: H = 0.2727, p = 0.6015
	groups := [][]float64{
		{1, 3, 5, 7, 9},
		{2, 4, 6, 8, 10},
	}

	result, err := KruskalWallis(groups)
	require.NoError(t, err)
	assert.Equal(t, 1, result.DoF)
	assert.InDelta(t, 3.0/11.0, result.Statistic, 1e-9)
	assert.InDelta(t, 0.6015, result.PValue, 1e-3)
	assert.False(t, result.Significant(0.05))
}

func TestKruskalWallisTies(t *testing.T) {
	// ties get average ranks and a tie correction; the statistic stays finite
	groups := [][]float64{
		{1, 1, 2, 2, 3},
		{2, 3, 3, 4, 4},
	}

	result, err := KruskalWallis(groups)
	require.NoError(t, err)
	assert.Greater(t, result.Statistic, 0.0)
	assert.Greater(t, result.PValue, 0.0)
	assert.Less(t, result.PValue, 1.0)
}

func TestKruskalWallisErrors(t *testing.T) {
	_, err := KruskalWallis([][]float64{{1, 2, 3}})
	assert.Error(t, err, "single group")

	_, err = KruskalWallis([][]float64{{1, 2}, {}})
	assert.Error(t, err, "empty group")

	_, err = KruskalWallis([][]float64{{5, 5}, {5, 5}})
	assert.Error(t, err, "all identical")
}
