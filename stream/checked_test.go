package stream_test

import (
	"testing"

	"github.com/amp-labs/collate/collate"
	collerrors "github.com/amp-labs/collate/errors"
	"github.com/amp-labs/collate/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []int
		expected []int
		unsorted bool
	}{
		{name: "empty", input: nil, expected: nil},
		{name: "sorted", input: []int{1, 2, 2, 5}, expected: []int{1, 2, 2, 5}},
		{name: "drops at first inversion", input: []int{1, 4, 3, 5}, expected: []int{1, 4}, unsorted: true},
		{name: "inversion at start", input: []int{2, 1}, expected: []int{2}, unsorted: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			items, err := stream.Collect(t.Context(), stream.Checked(ints, stream.FromSlice(tc.input...)))
			assert.Equal(t, tc.expected, items)

			if tc.unsorted {
				require.ErrorIs(t, err, collerrors.ErrUnsorted)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestChecked_StopsAfterFailure(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	src := stream.Checked(collate.Reverse(ints), stream.FromSlice(3, 2, 5, 1))

	for _, want := range []int{3, 2} {
		item, ok, err := src.Next(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, item)
	}

	_, _, err := src.Next(ctx)
	require.ErrorIs(t, err, collerrors.ErrUnsorted)

	_, ok, err := src.Next(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChecked_FeedsMerge(t *testing.T) {
	t.Parallel()

	left := stream.Checked(ints, stream.FromSlice(1, 5, 3))
	right := stream.FromSlice(2, 4)

	items, err := stream.Collect(t.Context(), stream.MergeSources(ints, left, right))
	require.ErrorIs(t, err, collerrors.ErrUnsorted)
	assert.Equal(t, []int{1, 2, 4, 5}, items)
}
