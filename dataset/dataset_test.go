package dataset

import (
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edakit/edakit/pkg/errors"
)

func loadFixture(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Load(filepath.Join("testdata", "prices.csv"))
	require.NoError(t, err)
	return ds
}

func TestLoad(t *testing.T) {
	ds := loadFixture(t)

	rows, cols := ds.Shape()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 7, cols)
	assert.Equal(t, "prices", ds.Name())
	assert.Equal(t, []string{
		"product_id", "category", "unit_price", "quantity",
		"freight_price", "product_rating", "promo_code",
	}, ds.Columns())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "no_such_file.csv"))
	require.Error(t, err)

	var loadErr *errors.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "not_found", loadErr.Kind)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"region", "amount"},
		{"east", 12.5},
		{"west", nil},
		{"east", 7.0},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := LoadXLSX(path, "")
	require.NoError(t, err)

	nrows, ncols := ds.Shape()
	assert.Equal(t, 3, nrows)
	assert.Equal(t, 2, ncols)
	assert.Equal(t, "orders", ds.Name())

	counts := ds.MissingCounts()
	assert.Equal(t, 1, counts["amount"])
}

func TestLoadXLSXMissingFile(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "absent.xlsx"), "")
	require.Error(t, err)

	var loadErr *errors.LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestMissingCounts(t *testing.T) {
	ds := loadFixture(t)

	counts := ds.MissingCounts()
	assert.Equal(t, 0, counts["product_id"])
	assert.Equal(t, 1, counts["unit_price"])
	assert.Equal(t, 1, counts["freight_price"])
	assert.Equal(t, 1, counts["product_rating"])
	assert.Equal(t, 7, counts["promo_code"])

	ratio, err := ds.MissingRatio("promo_code")
	require.NoError(t, err)
	assert.InDelta(t, 7.0/8.0, ratio, 1e-12)
}

func TestColumnKinds(t *testing.T) {
	ds := loadFixture(t)

	numeric := ds.NumericColumns()
	assert.Contains(t, numeric, "unit_price")
	assert.Contains(t, numeric, "quantity")
	assert.NotContains(t, numeric, "category")

	categorical := ds.CategoricalColumns()
	assert.Contains(t, categorical, "category")
	assert.NotContains(t, categorical, "unit_price")
}

func TestColumnNotFound(t *testing.T) {
	ds := loadFixture(t)

	_, err := ds.Column("no_such_column")
	require.Error(t, err)

	var notFound *errors.ColumnNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestNumericValuesDropsMissing(t *testing.T) {
	ds := loadFixture(t)

	values, err := ds.NumericValues("unit_price")
	require.NoError(t, err)
	assert.Len(t, values, 7) // one missing value dropped
}

func TestHead(t *testing.T) {
	ds := loadFixture(t)

	head := ds.Head(3)
	rows, cols := head.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 7, cols)

	// larger than the table clamps to all rows
	all := ds.Head(100)
	rows, _ = all.Shape()
	assert.Equal(t, 8, rows)
}

func TestDropColumns(t *testing.T) {
	ds := loadFixture(t)

	dropped, err := ds.DropColumns("promo_code")
	require.NoError(t, err)
	assert.False(t, dropped.HasColumn("promo_code"))
	assert.True(t, ds.HasColumn("promo_code")) // original untouched

	_, err = ds.DropColumns("no_such_column")
	assert.Error(t, err)
}

func TestWithColumn(t *testing.T) {
	ds := loadFixture(t)

	withTotal, err := ds.WithColumn(series.New(
		[]float64{1, 2, 3, 4, 5, 6, 7, 8}, series.Float, "total"))
	require.NoError(t, err)
	assert.True(t, withTotal.HasColumn("total"))

	_, err = ds.WithColumn(series.New([]float64{1, 2}, series.Float, "short"))
	require.Error(t, err)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestDropRowsWithNA(t *testing.T) {
	ds := loadFixture(t)

	clean, err := ds.DropRowsWithNA("unit_price", "freight_price")
	require.NoError(t, err)
	rows, _ := clean.Shape()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 0, clean.MissingCounts()["unit_price"])
}

func TestNewFromRecords(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"a", "b"},
		{"1", "x"},
		{"2", "y"},
	})
	require.NoError(t, df.Error())

	ds := New(df, "tiny")
	rows, cols := ds.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, "tiny", ds.Name())
}
