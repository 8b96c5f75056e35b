package transform_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramparser/pkg/transform"
)

func TestToInt(t *testing.T) {
	t.Parallel()

	valid := map[string]struct {
		input    any
		expected int64
	}{
		"string":        {"42", 42},
		"padded string": {" -7 ", -7},
		"json number":   {json.Number("12"), 12},
		"whole float":   {float64(3), 3},
		"float string":  {"5.0", 5},
		"int":           {9, 9},
		"uint8":         {uint8(8), 8},
	}
	for name, tt := range valid {
		t.Run(name, func(t *testing.T) {
			v, err := transform.ToInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	invalid := map[string]any{
		"letters":        "abc",
		"fraction":       1.5,
		"fraction text":  "1.5",
		"bool":           true,
		"huge uint":      uint64(1 << 63),
		"json fraction":  json.Number("2.5"),
		"nested records": map[string]any{},
	}
	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := transform.ToInt(input)
			assert.True(t, errors.Is(err, transform.ErrCoercion))
		})
	}
}

func TestToFloat(t *testing.T) {
	t.Parallel()

	v, err := transform.ToFloat("1.25")
	require.NoError(t, err)
	assert.Equal(t, 1.25, v)

	v, err = transform.ToFloat(json.Number("2"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = transform.ToFloat(int64(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = transform.ToFloat("x")
	assert.True(t, errors.Is(err, transform.ErrCoercion))

	_, err = transform.ToFloat(false)
	assert.True(t, errors.Is(err, transform.ErrCoercion))
}

func TestToBool(t *testing.T) {
	t.Parallel()

	for input, expected := range map[string]bool{"true": true, "1": true, "FALSE": false, " 0 ": false} {
		v, err := transform.ToBool(input)
		require.NoError(t, err)
		assert.Equal(t, expected, v, input)
	}

	v, err := transform.ToBool(json.Number("1"))
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = transform.ToBool(false)
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = transform.ToBool("yes please")
	assert.True(t, errors.Is(err, transform.ErrCoercion))

	_, err = transform.ToBool(1)
	assert.True(t, errors.Is(err, transform.ErrCoercion))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	clamp := transform.Clamp(0, 10)

	for _, tt := range []struct {
		input, expected any
	}{
		{float64(-1), float64(0)},
		{float64(5.5), float64(5.5)},
		{int64(11), int64(10)},
		{int(-3), int(0)},
		{"7", "7"},
	} {
		v, err := clamp(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, v)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	v, err := transform.Truncate("10.10")
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	v, err = transform.Truncate(-2.9)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), v)

	_, err = transform.Truncate("ten")
	assert.True(t, errors.Is(err, transform.ErrCoercion))
}
