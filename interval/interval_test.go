package interval_test

import (
	"testing"

	debugassert "github.com/amp-labs/collate/assert"
	"github.com/amp-labs/collate/collate"
	"github.com/amp-labs/collate/errors"
	"github.com/amp-labs/collate/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ints = collate.Natural[int]() //nolint:gochecknoglobals

func TestOverlaps_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		left, right interval.Range[int]
		expected    interval.Overlap
	}{
		{name: "disjoint before", left: interval.New(0, 1), right: interval.New(2, 5), expected: interval.Less},
		{name: "identical", left: interval.New(0, 1), right: interval.New(0, 1), expected: interval.Equal},
		{name: "adjacent after", left: interval.New(2, 3), right: interval.New(0, 2), expected: interval.Greater},
		{name: "inside", left: interval.New(3, 5), right: interval.New(1, 7), expected: interval.Narrow},
		{name: "around", left: interval.New(1, 7), right: interval.New(3, 5), expected: interval.Wide},
		{name: "hangs low", left: interval.New(1, 4), right: interval.New(3, 5), expected: interval.WideLess},
		{name: "hangs high", left: interval.New(3, 5), right: interval.New(1, 4), expected: interval.WideGreater},
		{name: "touching exclusive end", left: interval.New(0, 2), right: interval.New(2, 4), expected: interval.Less},
		{name: "touching inclusive end", left: interval.Closed(0, 2), right: interval.New(2, 4), expected: interval.WideLess},
		{name: "shared start, shorter", left: interval.New(1, 3), right: interval.New(1, 5), expected: interval.Narrow},
		{name: "shared end, longer", left: interval.New(0, 5), right: interval.New(1, 5), expected: interval.Wide},
		{name: "exclusive start is narrower", left: interval.FromBounds(interval.Exclude(1), interval.Exclude(5)), right: interval.New(1, 5), expected: interval.Narrow},
		{name: "inclusive end is wider", left: interval.Closed(1, 5), right: interval.New(1, 5), expected: interval.Wide},
		{name: "full covers everything", left: interval.Full[int](), right: interval.New(-10, 10), expected: interval.Wide},
		{name: "full vs full", left: interval.Full[int](), right: interval.Full[int](), expected: interval.Equal},
		{name: "open start", left: interval.LessThan(3), right: interval.New(1, 5), expected: interval.WideLess},
		{name: "open end", left: interval.AtLeast(3), right: interval.New(1, 5), expected: interval.WideGreater},
		{name: "open end past it", left: interval.AtLeast(5), right: interval.New(1, 5), expected: interval.Greater},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.left.Overlaps(tc.right, ints))
			assert.Equal(t, tc.expected.Reverse(), tc.right.Overlaps(tc.left, ints))
		})
	}
}

// allRanges builds every well-formed range over a few small integers with every bound kind.
func allRanges() []interval.Range[int] {
	bounds := []interval.Bound[int]{interval.Open[int]()}
	for v := range 4 {
		bounds = append(bounds, interval.Include(v), interval.Exclude(v))
	}

	var ranges []interval.Range[int]

	for _, start := range bounds {
		for _, end := range bounds {
			r := interval.FromBounds(start, end)
			if r.Validate(ints) == nil {
				ranges = append(ranges, r)
			}
		}
	}

	return ranges
}

func TestOverlaps_Properties(t *testing.T) {
	t.Parallel()

	ranges := allRanges()
	require.NotEmpty(t, ranges)

	for _, a := range ranges {
		for _, b := range ranges {
			ab := a.Overlaps(b, ints)
			ba := b.Overlaps(a, ints)

			assert.Equal(t, ab.Reverse(), ba, "%s vs %s", a, b)

			if a.Contains(b, ints) {
				assert.True(t, a.ContainsPartial(b, ints), "%s contains %s", a, b)
			}

			if ab == interval.Equal {
				assert.Equal(t, a, b)
			}
		}
	}
}

func TestOverlaps_CountsComparisons(t *testing.T) {
	t.Parallel()

	if debugassert.Enabled {
		t.Skip("debug checks make extra comparisons")
	}

	c := collate.Counting(ints)

	interval.New(3, 5).Overlaps(interval.New(1, 7), c)
	assert.EqualValues(t, 2, c.Reset(), "a Narrow result needs only the two endpoint comparisons")

	interval.New(0, 1).Overlaps(interval.New(2, 5), c)
	assert.EqualValues(t, 3, c.Reset(), "disjoint ranges need one extra comparison")
}

func TestOverlapsValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		r        interval.Range[int]
		value    int
		expected interval.Overlap
	}{
		{name: "before", r: interval.New(3, 5), value: 1, expected: interval.Greater},
		{name: "after", r: interval.New(3, 5), value: 7, expected: interval.Less},
		{name: "at exclusive end", r: interval.New(3, 5), value: 5, expected: interval.Less},
		{name: "at inclusive start", r: interval.New(3, 5), value: 3, expected: interval.Wide},
		{name: "inside", r: interval.New(3, 5), value: 4, expected: interval.Wide},
		{name: "point", r: interval.Point(4), value: 4, expected: interval.Equal},
		{name: "at exclusive start", r: interval.FromBounds(interval.Exclude(3), interval.Open[int]()), value: 3, expected: interval.Greater},
		{name: "empty range opening at value", r: interval.New(4, 4), value: 4, expected: interval.Less},
		{name: "empty range after value", r: interval.FromBounds(interval.Exclude(4), interval.Include(4)), value: 4, expected: interval.Greater},
		{name: "full", r: interval.Full[int](), value: 0, expected: interval.Wide},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			overlap := tc.r.OverlapsValue(tc.value, ints)
			assert.Equal(t, tc.expected, overlap)
			assert.NotEqual(t, interval.Narrow, overlap)

			contained := tc.expected == interval.Wide || tc.expected == interval.Equal
			assert.Equal(t, contained, tc.r.ContainsValue(tc.value, ints))
		})
	}
}

func TestOverlapsValue_NeverNarrow(t *testing.T) {
	t.Parallel()

	for _, r := range allRanges() {
		for v := -1; v < 5; v++ {
			assert.NotEqual(t, interval.Narrow, r.OverlapsValue(v, ints), "%s vs %d", r, v)
		}
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, collate.Less, interval.CompareStart(ints, interval.Open[int](), interval.Include(-100)))
	assert.Equal(t, collate.Greater, interval.CompareEnd(ints, interval.Open[int](), interval.Include(100)))
	assert.Equal(t, collate.Equal, interval.CompareEnd(ints, interval.Open[int](), interval.Open[int]()))

	// At equal values the exclusive bound is the restrictive one.
	assert.Equal(t, collate.Greater, interval.CompareStart(ints, interval.Exclude(1), interval.Include(1)))
	assert.Equal(t, collate.Less, interval.CompareEnd(ints, interval.Exclude(1), interval.Include(1)))
	assert.Equal(t, collate.Equal, interval.CompareStart(ints, interval.Exclude(1), interval.Exclude(1)))
	assert.Equal(t, collate.Less, interval.CompareStart(ints, interval.Exclude(0), interval.Include(1)))

	v, ok := interval.Include(3).Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = interval.Open[int]().Value()
	assert.False(t, ok)

	assert.Equal(t, interval.Excluded, interval.Exclude(1).Kind())
	assert.Equal(t, "Included(3)", interval.Include(3).String())
	assert.Equal(t, "Unbounded", interval.Open[int]().String())
	assert.Equal(t, "Excluded", interval.Excluded.String())

	assert.Equal(t, collate.Less, interval.CompareValue(ints, 0, interval.Include(1), interval.Open[int]()))
	assert.Equal(t, collate.Greater, interval.CompareValue(ints, 5, interval.Open[int](), interval.Exclude(5)))
	assert.Equal(t, collate.Equal, interval.CompareValue(ints, 5, interval.Include(5), interval.Include(5)))
}

func TestRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1, 5)", interval.New(1, 5).String())
	assert.Equal(t, "(, 5)", interval.LessThan(5).String())
	assert.Equal(t, "[2, )", interval.AtLeast(2).String())
	assert.Equal(t, "(1, 3]", interval.FromBounds(interval.Exclude(1), interval.Include(3)).String())

	assert.False(t, interval.Full[int]().HasBounds())
	assert.True(t, interval.AtLeast(0).HasBounds())

	assert.True(t, interval.New(3, 3).IsEmpty(ints))
	assert.False(t, interval.Point(3).IsEmpty(ints))
	assert.False(t, interval.LessThan(0).IsEmpty(ints))

	require.NoError(t, interval.New(1, 1).Validate(ints))
	require.ErrorIs(t, interval.New(5, 1).Validate(ints), errors.ErrInvalidRange)
}

func TestOverlapsRangeInterface(t *testing.T) {
	t.Parallel()

	outer, inner := interval.New(0, 10), interval.Closed(2, 3)

	assert.True(t, interval.Contains(outer, inner, ints))
	assert.False(t, interval.Contains(inner, outer, ints))
	assert.True(t, interval.ContainsPartial(inner, outer, ints))
	assert.False(t, interval.ContainsPartial(interval.New(0, 1), interval.New(5, 6), ints))
	assert.True(t, interval.ContainsValue(inner, 3, ints))
}

func TestOverlapsAll(t *testing.T) {
	t.Parallel()

	right := interval.New(1, 10)

	assert.Equal(t, interval.WideLess,
		interval.OverlapsAll(ints, []interval.Range[int]{interval.New(0, 2), interval.New(3, 4)}, right))
	assert.Equal(t, interval.Wide,
		interval.OverlapsAll(ints, []interval.Range[int]{interval.New(-5, 0), interval.New(12, 20)}, right))
	assert.Equal(t, interval.Narrow,
		interval.OverlapsAll(ints, []interval.Range[int]{interval.New(2, 3), interval.New(5, 6)}, right))
	assert.Equal(t, interval.Equal, interval.OverlapsAll(ints, nil, right))
}
