package registry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluck(t *testing.T) {
	document := `
	{
		"a": 1,
		"b": [1, {"latest": "decoy"}, 3],
		"c": null,
		"d": {
			"e f": {
				"g": "z"
			},
			"": {
				"s": "here"
			},
			"latest": "not-this-one"
		},
		"dist-tags": {
			"next": "4.0.0-beta.1",
			"latest": "3.4.17"
		},
		"f": true
	}
	`

	var tests = []struct {
		expected any
		path     []string
	}{
		{path: []string{"dist-tags", "latest"}, expected: "3.4.17"},
		{path: []string{"dist-tags", "next"}, expected: "4.0.0-beta.1"},
		{path: []string{"d", "e f", "g"}, expected: "z"},
		{path: []string{"d", "", "s"}, expected: "here"},
		{path: []string{"a"}, expected: float64(1)},
		{path: []string{"c"}, expected: nil},
		{path: []string{"f"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(dotted(tt.path), func(t *testing.T) {
			v, err := Pluck(context.Background(), strings.NewReader(document), tt.path...)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestPluckErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing key", func(t *testing.T) {
		_, err := Pluck(ctx, strings.NewReader(`{"a": {"b": 1}}`), "a", "c")
		require.Error(t, err)

		assert.True(t, errors.Is(err, ErrPathNotFound))
		assert.Contains(t, err.Error(), ".a.c")
	})

	t.Run("Not an object", func(t *testing.T) {
		_, err := Pluck(ctx, strings.NewReader(`{"a": [1, 2]}`), "a", "b")
		require.Error(t, err)

		assert.Contains(t, err.Error(), "not a JSON object")
	})

	t.Run("Value is not a scalar", func(t *testing.T) {
		_, err := Pluck(ctx, strings.NewReader(`{"a": {"b": 1}}`), "a")
		require.Error(t, err)

		assert.Contains(t, err.Error(), "not a scalar")
	})

	t.Run("Empty path", func(t *testing.T) {
		_, err := Pluck(ctx, strings.NewReader(`{}`))
		require.Error(t, err)
	})

	t.Run("Truncated document", func(t *testing.T) {
		_, err := Pluck(ctx, strings.NewReader(`{"a": {"b": `), "a", "b")
		require.Error(t, err)
	})

	t.Run("Expired context", func(t *testing.T) {
		cctx, cancel := context.WithTimeout(ctx, time.Nanosecond)
		defer cancel()

		<-cctx.Done()

		_, err := Pluck(cctx, strings.NewReader(`{"x": 1, "a": 2}`), "a")
		require.Error(t, err)

		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
