// Package interval classifies how ranges relate to one another under an arbitrary
// collator. A Range is a pair of Bounds; Overlaps compares two of them and returns
// one of seven Overlap values, the range analogue of Less, Equal and Greater.
//
// Ranges are expected to be well formed: the end must not precede the start. This
// is checked only in debug builds (-tags debug); a malformed range otherwise gives
// an unspecified classification.
package interval

import (
	"fmt"
	"strings"

	"github.com/amp-labs/collate/assert"
	"github.com/amp-labs/collate/collate"
	"github.com/amp-labs/collate/errors"
)

// Range is a one-dimensional range over values of type V.
// The zero Range is unbounded on both sides and so covers every value.
type Range[V any] struct {
	Start Bound[V]
	End   Bound[V]
}

// New returns the half-open range [start, end).
func New[V any](start, end V) Range[V] {
	return Range[V]{Start: Include(start), End: Exclude(end)}
}

// Closed returns the range [start, end].
func Closed[V any](start, end V) Range[V] {
	return Range[V]{Start: Include(start), End: Include(end)}
}

// AtLeast returns the range [start, ∞).
func AtLeast[V any](start V) Range[V] {
	return Range[V]{Start: Include(start)}
}

// LessThan returns the range (-∞, end).
func LessThan[V any](end V) Range[V] {
	return Range[V]{End: Exclude(end)}
}

// Point returns the range [v, v] holding only v.
func Point[V any](v V) Range[V] {
	return Closed(v, v)
}

// Full returns the range covering every value.
func Full[V any]() Range[V] {
	return Range[V]{}
}

// FromBounds builds a range from explicit bounds.
func FromBounds[V any](start, end Bound[V]) Range[V] {
	return Range[V]{Start: start, End: end}
}

// HasBounds returns false when neither side of the range is constrained.
func (r Range[V]) HasBounds() bool {
	return !r.Start.IsUnbounded() || !r.End.IsUnbounded()
}

// Validate returns errors.ErrInvalidRange if the end of r precedes its start.
func (r Range[V]) Validate(c collate.Collator[V]) error {
	if r.inverted(c) {
		return fmt.Errorf("%w: %s", errors.ErrInvalidRange, r)
	}

	return nil
}

func (r Range[V]) inverted(c collate.Collator[V]) bool {
	start, hasStart := r.Start.Value()
	end, hasEnd := r.End.Value()

	return hasStart && hasEnd && c.Compare(end, start) == collate.Less
}

// IsEmpty reports whether no value can satisfy both bounds of r, as with [3, 3).
func (r Range[V]) IsEmpty(c collate.Collator[V]) bool {
	return !intersects(c, r.End, r.Start)
}

// Overlaps classifies r against other.
func (r Range[V]) Overlaps(other Range[V], c collate.Collator[V]) Overlap {
	assert.Lazy(func() bool { return !r.inverted(c) }, "range %s ends before it starts", r)
	assert.Lazy(func() bool { return !other.inverted(c) }, "range %s ends before it starts", other)

	start := CompareStart(c, r.Start, other.Start)
	end := CompareEnd(c, r.End, other.End)

	switch {
	case start == collate.Equal && end == collate.Equal:
		return Equal
	case start != collate.Less && end != collate.Greater:
		return Narrow
	case start != collate.Greater && end != collate.Less:
		return Wide
	case start == collate.Less:
		// Both ends are lower: r either stops before other starts, or hangs off its low side.
		if intersects(c, r.End, other.Start) {
			return WideLess
		}

		return Less
	default:
		if intersects(c, other.End, r.Start) {
			return WideGreater
		}

		return Greater
	}
}

// Contains reports whether other lies entirely within r.
func (r Range[V]) Contains(other Range[V], c collate.Collator[V]) bool {
	return Contains(r, other, c)
}

// ContainsPartial reports whether other shares at least part of r.
func (r Range[V]) ContainsPartial(other Range[V], c collate.Collator[V]) bool {
	return ContainsPartial(r, other, c)
}

// OverlapsValue classifies r against the single value v, treated as the range [v, v].
// The result is never Narrow: an empty range sitting on v, like [v, v), is Less
// when it opens at v and Greater otherwise.
func (r Range[V]) OverlapsValue(v V, c collate.Collator[V]) Overlap {
	overlap := r.Overlaps(Point(v), c)
	if overlap != Narrow {
		return overlap
	}

	if CompareStart(c, r.Start, Include(v)) == collate.Greater {
		return Greater
	}

	return Less
}

// ContainsValue reports whether v lies within r.
func (r Range[V]) ContainsValue(v V, c collate.Collator[V]) bool {
	return ContainsValue(r, v, c)
}

func (r Range[V]) String() string {
	var sb strings.Builder

	switch r.Start.kind {
	case Included:
		fmt.Fprintf(&sb, "[%v", r.Start.value)
	case Excluded:
		fmt.Fprintf(&sb, "(%v", r.Start.value)
	default:
		sb.WriteString("(")
	}

	sb.WriteString(", ")

	switch r.End.kind {
	case Included:
		fmt.Fprintf(&sb, "%v]", r.End.value)
	case Excluded:
		fmt.Fprintf(&sb, "%v)", r.End.value)
	default:
		sb.WriteString(")")
	}

	return sb.String()
}

// OverlapsAll classifies a range made of several pieces against other by folding
// the classification of each piece with Then. With no pieces it returns Equal.
func OverlapsAll[V any](c collate.Collator[V], pieces []Range[V], other Range[V]) Overlap {
	overlaps := make([]Overlap, len(pieces))
	for i, piece := range pieces {
		overlaps[i] = piece.Overlaps(other, c)
	}

	return Fold(overlaps...)
}
