// Package collate standardizes how values are compared.
//
// A Collator is a value that embodies a total order over some type V. Everything
// else in this module (range overlap, composite-key bisection, merging sorted
// streams) is written against a Collator instead of hard-coding a comparison, so
// callers can swap in locale-aware, natural or structural orderings freely.
//
// # Contract
//
// Compare must define a strict total order: antisymmetric, transitive and total.
// Algorithms built on a collator that violates this produce unspecified (but never
// memory-unsafe) results. A collator must also be safe for concurrent use, because
// the same instance is routinely shared across goroutines: Compare must not mutate
// shared state.
//
// Comparisons may be expensive (locale collation, for instance), so code in this
// module composes them with Ordering.ThenFunc and friends rather than comparing every
// field up front.
package collate

import (
	"cmp"
	"fmt"
)

// Ordering is the result of comparing two values.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// FromInt converts the sign of a cmp.Compare style result into an Ordering.
func FromInt(i int) Ordering {
	switch {
	case i < 0:
		return Less
	case i > 0:
		return Greater
	default:
		return Equal
	}
}

// Int returns -1, 0 or +1.
func (o Ordering) Int() int {
	return int(o)
}

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Then returns o unless it is Equal, in which case it returns next.
// This chains comparisons lexicographically.
func (o Ordering) Then(next Ordering) Ordering {
	if o != Equal {
		return o
	}

	return next
}

// ThenFunc is Then for comparisons that are costly: next is only called when o is Equal.
func (o Ordering) ThenFunc(next func() Ordering) Ordering {
	if o != Equal {
		return o
	}

	return next()
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int8(o))
	}
}

// Collator compares two values of type V.
type Collator[V any] interface {
	// Compare returns the collation of a relative to b.
	Compare(a, b V) Ordering
}

// Func adapts an ordinary function into a Collator.
type Func[V any] func(a, b V) Ordering

var _ Collator[int] = Func[int](nil)

func (f Func[V]) Compare(a, b V) Ordering {
	return f(a, b)
}

// FromCmp adapts a cmp.Compare style function (negative, zero, positive) into a Collator.
func FromCmp[V any](compare func(a, b V) int) Collator[V] {
	return Func[V](func(a, b V) Ordering {
		return FromInt(compare(a, b))
	})
}

// natural is the collator for any type with an intrinsic order. It has no fields,
// so every natural[V] is interchangeable with every other.
type natural[V cmp.Ordered] struct{}

func (natural[V]) Compare(a, b V) Ordering {
	return FromInt(cmp.Compare(a, b))
}

// Natural returns a collator that forwards to the natural ordering of V.
// Floating point NaNs sort before every other value, as with cmp.Compare.
func Natural[V cmp.Ordered]() Collator[V] {
	return natural[V]{}
}

type reversed[V any] struct {
	inner Collator[V]
}

func (r reversed[V]) Compare(a, b V) Ordering {
	return r.inner.Compare(b, a)
}

// Reverse returns a collator with the opposite order of c.
// Reversing twice gives back the original collator.
func Reverse[V any](c Collator[V]) Collator[V] {
	if r, ok := c.(reversed[V]); ok {
		return r.inner
	}

	return reversed[V]{inner: c}
}

// CompareRef compares two values by reference. Nil pointers sort before everything else.
func CompareRef[V any](c Collator[V], a, b *V) Ordering {
	switch {
	case a == nil && b == nil:
		return Equal
	case a == nil:
		return Less
	case b == nil:
		return Greater
	case a == b:
		return Equal
	default:
		return c.Compare(*a, *b)
	}
}

// Ref lifts c to a collator over pointers, without copying the pointed-to values.
func Ref[V any](c Collator[V]) Collator[*V] {
	return Func[*V](func(a, b *V) Ordering {
		return CompareRef(c, a, b)
	})
}

// Min returns the lesser of a and b, preferring a on ties.
func Min[V any](c Collator[V], a, b V) V { //nolint:ireturn
	if c.Compare(b, a) == Less {
		return b
	}

	return a
}

// Max returns the greater of a and b, preferring a on ties.
func Max[V any](c Collator[V], a, b V) V { //nolint:ireturn
	if c.Compare(b, a) == Greater {
		return b
	}

	return a
}

// IsSorted reports whether values are in non-decreasing order under c.
func IsSorted[V any](c Collator[V], values []V) bool {
	for i := 1; i < len(values); i++ {
		if c.Compare(values[i-1], values[i]) == Greater {
			return false
		}
	}

	return true
}
