package xform_test

import (
	"log/slog"
	"testing"

	"github.com/amp-labs/collate/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no whitespace", "merge", "merge"},
		{"both sides", "  merge  ", "merge"},
		{"tabs and newlines", "\tmerge\n", "merge"},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := xform.TrimString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	mode := xform.OneOf("merge", "diff")

	value, err := mode("diff")
	require.NoError(t, err)
	assert.Equal(t, "diff", value)

	_, err = mode("union")
	require.ErrorIs(t, err, xform.ErrInvalidChoice)
	assert.Contains(t, err.Error(), "union")
}

func TestBool(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1", "t", "true", "TRUE"} {
		v, err := xform.Bool(in)
		require.NoError(t, err)
		assert.True(t, v, in)
	}

	_, err := xform.Bool("yes")
	require.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"warn+2", slog.LevelWarn + 2},
	}

	for _, tt := range tests {
		level, err := xform.SlogLevel(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, level)
	}

	_, err := xform.SlogLevel("verbose")
	require.ErrorIs(t, err, xform.ErrInvalidLogLevel)
}
