package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledNames(t *testing.T) {
	names := BundledNames()
	assert.Contains(t, names, "titanic")
}

func TestLoadBundledUnknown(t *testing.T) {
	_, err := LoadBundled("no_such_dataset")
	assert.Error(t, err)
}

func TestTitanic(t *testing.T) {
	ds, err := Titanic()
	require.NoError(t, err)

	rows, cols := ds.Shape()
	assert.Equal(t, 300, rows)
	assert.Equal(t, 12, cols)

	for _, col := range []string{"Survived", "Pclass", "Sex", "Age", "Fare", "Embarked", "Cabin"} {
		assert.True(t, ds.HasColumn(col), col)
	}

	// Age has missing values, Cabin is mostly empty
	counts := ds.MissingCounts()
	assert.Greater(t, counts["Age"], 0)

	ratio, err := ds.MissingRatio("Cabin")
	require.NoError(t, err)
	assert.Greater(t, ratio, 0.5)

	// Survived is numeric 0/1
	values, err := ds.NumericValues("Survived")
	require.NoError(t, err)
	assert.Len(t, values, 300)
	for _, v := range values {
		assert.True(t, v == 0 || v == 1)
	}
}
