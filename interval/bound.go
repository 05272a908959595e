package interval

import (
	"fmt"

	"github.com/amp-labs/collate/collate"
)

// BoundKind says how a Bound constrains its side of a range.
type BoundKind uint8

const (
	// Unbounded places no constraint on its side of the range.
	Unbounded BoundKind = iota
	// Included admits its value.
	Included
	// Excluded admits everything strictly beyond its value.
	Excluded
)

func (k BoundKind) String() string {
	switch k {
	case Unbounded:
		return "Unbounded"
	case Included:
		return "Included"
	case Excluded:
		return "Excluded"
	default:
		return fmt.Sprintf("BoundKind(%d)", uint8(k))
	}
}

// Bound is one endpoint of a range. The zero Bound is Unbounded.
type Bound[V any] struct {
	kind  BoundKind
	value V
}

// Open returns a Bound that places no constraint.
func Open[V any]() Bound[V] {
	return Bound[V]{}
}

// Include returns a Bound that admits v.
func Include[V any](v V) Bound[V] {
	return Bound[V]{kind: Included, value: v}
}

// Exclude returns a Bound that stops just short of v.
func Exclude[V any](v V) Bound[V] {
	return Bound[V]{kind: Excluded, value: v}
}

func (b Bound[V]) Kind() BoundKind {
	return b.kind
}

// Value returns the bound's value, or false when it is Unbounded.
func (b Bound[V]) Value() (V, bool) { //nolint:ireturn
	return b.value, b.kind != Unbounded
}

func (b Bound[V]) IsUnbounded() bool {
	return b.kind == Unbounded
}

func (b Bound[V]) String() string {
	switch b.kind {
	case Included:
		return fmt.Sprintf("Included(%v)", b.value)
	case Excluded:
		return fmt.Sprintf("Excluded(%v)", b.value)
	default:
		return "Unbounded"
	}
}

// side tells compareBounds which end of a range two bounds sit on. It decides how
// ties are broken: an Unbounded start is below everything and an Unbounded end is
// above everything, and at an equal value an Excluded bound is the more restrictive
// one, which means greater for a start and less for an end.
type side int8

const (
	startSide side = -1
	endSide   side = 1
)

// compareBounds compares two bounds on the same side of their ranges.
func compareBounds[V any](c collate.Collator[V], a, b Bound[V], s side) collate.Ordering {
	switch {
	case a.kind == Unbounded && b.kind == Unbounded:
		return collate.Equal
	case a.kind == Unbounded:
		return collate.Ordering(s)
	case b.kind == Unbounded:
		return collate.Ordering(-s)
	}

	if rel := c.Compare(a.value, b.value); rel != collate.Equal {
		return rel
	}

	switch {
	case a.kind == b.kind:
		return collate.Equal
	case a.kind == Excluded:
		return collate.Ordering(-s)
	default:
		return collate.Ordering(s)
	}
}

// CompareStart compares two start bounds: which range begins first.
func CompareStart[V any](c collate.Collator[V], a, b Bound[V]) collate.Ordering {
	return compareBounds(c, a, b, startSide)
}

// CompareEnd compares two end bounds: which range stops first.
func CompareEnd[V any](c collate.Collator[V], a, b Bound[V]) collate.Ordering {
	return compareBounds(c, a, b, endSide)
}

// intersects reports whether a range ending at end can share a value with a range
// starting at start. Both bounds must be bounded.
func intersects[V any](c collate.Collator[V], end, start Bound[V]) bool {
	if end.kind == Unbounded || start.kind == Unbounded {
		return true
	}

	switch c.Compare(end.value, start.value) {
	case collate.Greater:
		return true
	case collate.Equal:
		return end.kind == Included && start.kind == Included
	default:
		return false
	}
}

// admitsFrom reports whether v satisfies start as a lower bound.
func admitsFrom[V any](c collate.Collator[V], start Bound[V], v V) bool {
	switch start.kind {
	case Included:
		return c.Compare(v, start.value) != collate.Less
	case Excluded:
		return c.Compare(v, start.value) == collate.Greater
	default:
		return true
	}
}

// admitsTo reports whether v satisfies end as an upper bound.
func admitsTo[V any](c collate.Collator[V], end Bound[V], v V) bool {
	switch end.kind {
	case Included:
		return c.Compare(v, end.value) != collate.Greater
	case Excluded:
		return c.Compare(v, end.value) == collate.Less
	default:
		return true
	}
}

// CompareValue places v relative to the bounds start and end: Less when v falls
// before start, Greater when it falls after end, and Equal when both admit it.
func CompareValue[V any](c collate.Collator[V], v V, start, end Bound[V]) collate.Ordering {
	switch {
	case !admitsFrom(c, start, v):
		return collate.Less
	case !admitsTo(c, end, v):
		return collate.Greater
	default:
		return collate.Equal
	}
}
