package bisect

import (
	"fmt"
	"strings"

	"github.com/amp-labs/collate/collate"
	"github.com/amp-labs/collate/interval"
)

// Range selects rows of a composite-key index: an exact match on every column of
// the prefix, then a bounded range on the column right after it. Columns beyond
// that are unconstrained.
//
// The zero Range has an empty prefix and no bounds, and selects every row.
type Range[V any] struct {
	prefix []V
	start  interval.Bound[V]
	end    interval.Bound[V]
}

// WithPrefix selects every row that starts with prefix. The slice is retained, not copied.
func WithPrefix[V any](prefix []V) Range[V] {
	return Range[V]{prefix: prefix}
}

// New selects rows that start with prefix and whose next column lies in [start, end).
func New[V any](prefix []V, start, end V) Range[V] {
	return Range[V]{prefix: prefix, start: interval.Include(start), end: interval.Exclude(end)}
}

// FromBounds selects rows that start with prefix and whose next column lies within start and end.
func FromBounds[V any](prefix []V, start, end interval.Bound[V]) Range[V] {
	return Range[V]{prefix: prefix, start: start, end: end}
}

// AtLeast selects rows that start with prefix and whose next column is at least start.
func AtLeast[V any](prefix []V, start V) Range[V] {
	return Range[V]{prefix: prefix, start: interval.Include(start)}
}

// LessThan selects rows that start with prefix and whose next column is below end.
func LessThan[V any](prefix []V, end V) Range[V] {
	return Range[V]{prefix: prefix, end: interval.Exclude(end)}
}

func (r Range[V]) Prefix() []V {
	return r.prefix
}

func (r Range[V]) Start() interval.Bound[V] { //nolint:ireturn
	return r.start
}

func (r Range[V]) End() interval.Bound[V] { //nolint:ireturn
	return r.end
}

// Bounds returns the constraint on the column after the prefix as a one-dimensional range.
func (r Range[V]) Bounds() interval.Range[V] {
	return interval.FromBounds(r.start, r.end)
}

// HasBounds returns false when the column after the prefix is unconstrained.
func (r Range[V]) HasBounds() bool {
	return !r.start.IsUnbounded() || !r.end.IsUnbounded()
}

// Len is the number of columns the range constrains.
func (r Range[V]) Len() int {
	if r.HasBounds() {
		return len(r.prefix) + 1
	}

	return len(r.prefix)
}

// Contains reports whether every row selected by other is also selected by r.
func (r Range[V]) Contains(other Range[V], c collate.Collator[V]) bool {
	if len(other.prefix) < len(r.prefix) {
		return false
	}

	if CompareRow(c, other.prefix[:len(r.prefix)], r.prefix) != collate.Equal {
		return false
	}

	if len(other.prefix) == len(r.prefix) {
		return r.Bounds().Contains(other.Bounds(), c)
	}

	// other pins the column r bounds to a single value.
	return interval.CompareValue(c, other.prefix[len(r.prefix)], r.start, r.end) == collate.Equal
}

// ContainsRow reports whether r selects row.
func (r Range[V]) ContainsRow(row []V, c collate.Collator[V]) bool {
	return CompareRowToRange(c, row, r) == collate.Equal
}

func (r Range[V]) String() string {
	if len(r.prefix) == 0 {
		return "Range " + r.Bounds().String()
	}

	parts := make([]string, len(r.prefix))
	for i, v := range r.prefix {
		parts[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("Range %s with prefix %s", r.Bounds(), strings.Join(parts, ", "))
}
