package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnNotFoundError(t *testing.T) {
	err := NewColumnNotFoundError("age", []string{"name", "fare"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "age" not found`)
	assert.Contains(t, err.Error(), "name, fare")

	var notFound *ColumnNotFoundError
	require.True(t, As(err, &notFound))
	assert.Equal(t, "age", notFound.Column)
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("StandardScaler", "Transform")
	assert.Contains(t, err.Error(), "StandardScaler")
	assert.Contains(t, err.Error(), "Call Fit() before using Transform()")

	var notFitted *NotFittedError
	assert.True(t, As(err, &notFitted))
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("WithColumn", 10, 5, 0)
	assert.Contains(t, err.Error(), "Expected 10, got 5")
	assert.Contains(t, err.Error(), "rows")

	var dimErr *DimensionError
	require.True(t, As(err, &dimErr))
	assert.Equal(t, 10, dimErr.Expected)
	assert.Equal(t, 5, dimErr.Got)
}

func TestLoadError(t *testing.T) {
	cause := New("open failed")
	err := NewLoadError("data/prices.csv", "read", cause)
	assert.Contains(t, err.Error(), "data/prices.csv")
	assert.Contains(t, err.Error(), "(read)")

	var loadErr *LoadError
	require.True(t, As(err, &loadErr))
	assert.Equal(t, "read", loadErr.Kind)
	assert.True(t, Is(err, cause)) // cause is preserved via Unwrap
}

func TestWrapPreservesType(t *testing.T) {
	err := Wrap(NewValueError("Histogram", "bins must be positive"), "render chart")
	assert.Contains(t, err.Error(), "render chart")

	var valueErr *ValueError
	assert.True(t, As(err, &valueErr))
}

func TestErrEmptyData(t *testing.T) {
	err := Wrap(ErrEmptyData, "stats.Describe")
	assert.True(t, Is(err, ErrEmptyData))
}
