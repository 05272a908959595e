// Package bisect searches sorted sequences of composite keys.
//
// A row is a slice of values compared column by column; a row that is a strict
// prefix of another sorts first. BisectLeft, BisectRight and Bisect find where a
// key prefix, or a Range over a prefix plus one bounded column, begins and ends
// within rows sorted ascending by CompareRow.
//
// Rows must be sorted. This is only checked in debug builds (-tags debug).
package bisect

import (
	"sort"

	"github.com/amp-labs/collate/assert"
	"github.com/amp-labs/collate/collate"
	"github.com/amp-labs/collate/interval"
)

// CompareRow compares two rows lexicographically: the first differing column
// decides, and a strict prefix is Less than any row extending it.
func CompareRow[V any](c collate.Collator[V], left, right []V) collate.Ordering {
	for i := range min(len(left), len(right)) {
		if o := c.Compare(left[i], right[i]); o != collate.Equal {
			return o
		}
	}

	return collate.FromInt(len(left) - len(right))
}

// IsSorted reports whether rows are monotonic under CompareRow, either
// non-decreasing or non-increasing. Ties are allowed.
func IsSorted[V any, R ~[]V](c collate.Collator[V], rows []R) bool {
	direction := collate.Equal

	for i := 1; i < len(rows); i++ {
		o := CompareRow[V](c, rows[i-1], rows[i])

		switch {
		case o == collate.Equal:
		case direction == collate.Equal:
			direction = o
		case o != direction:
			return false
		}
	}

	return true
}

// CompareRowToRange places row relative to rng. The prefix decides first: a row
// that differs from it, or stops short of it, is ordered by the prefix alone.
// Otherwise the column after the prefix is compared against the range's bounds.
//
// A row that is exactly the prefix has no column to compare. It sorts before
// every row the range selects when the range has a start bound, and is
// selected (Equal) when it doesn't.
func CompareRowToRange[V any](c collate.Collator[V], row []V, rng Range[V]) collate.Ordering {
	for i, p := range rng.prefix {
		if i == len(row) {
			return collate.Less
		}

		if o := c.Compare(row[i], p); o != collate.Equal {
			return o
		}
	}

	switch {
	case !rng.HasBounds():
		return collate.Equal
	case len(row) == len(rng.prefix):
		if rng.start.IsUnbounded() {
			return collate.Equal
		}

		return collate.Less
	default:
		return interval.CompareValue(c, row[len(rng.prefix)], rng.start, rng.end)
	}
}

// BisectLeft returns the index of the first row that starts with key.
// If no row does, it is where such a row would be inserted.
func BisectLeft[V any, R ~[]V](c collate.Collator[V], rows []R, key []V) int {
	left, _ := Bisect(c, rows, WithPrefix(key))

	return left
}

// BisectRight returns the index just past the last row that starts with key.
// If no row does, it is where such a row would be inserted. An empty key matches
// every row, so BisectRight returns len(rows).
func BisectRight[V any, R ~[]V](c collate.Collator[V], rows []R, key []V) int {
	_, right := Bisect(c, rows, WithPrefix(key))

	return right
}

// Bisect returns the half-open index range [left, right) of rows selected by rng.
// Rows before left compare Less than rng and rows from right on compare Greater.
// A Range with no prefix and no bounds selects everything: (0, len(rows)).
func Bisect[V any, R ~[]V](c collate.Collator[V], rows []R, rng Range[V]) (left, right int) {
	assert.Lazy(func() bool { return IsSorted(c, rows) }, "bisect: rows are not sorted")
	assert.Lazy(func() bool { return rng.Bounds().Validate(c) == nil }, "bisect: %s ends before it starts", rng)

	left = sort.Search(len(rows), func(i int) bool {
		return CompareRowToRange[V](c, rows[i], rng) != collate.Less
	})

	right = left + sort.Search(len(rows)-left, func(i int) bool {
		return CompareRowToRange[V](c, rows[left+i], rng) == collate.Greater
	})

	return left, right
}
