package interval

import "github.com/amp-labs/collate/collate"

// OverlapsRange is implemented by any range-like type that can classify itself against
// another value of type T under a collator over V. Contains and ContainsPartial are
// derived from it.
type OverlapsRange[T any, V any] interface {
	Overlaps(other T, c collate.Collator[V]) Overlap
}

// OverlapsValue is implemented by range-like types that can classify themselves against a
// single value.
type OverlapsValue[V any] interface {
	OverlapsValue(v V, c collate.Collator[V]) Overlap
}

var (
	_ OverlapsRange[Range[int], int] = Range[int]{}
	_ OverlapsValue[int]             = Range[int]{}
)

// Contains reports whether other lies entirely within r.
func Contains[T OverlapsRange[T, V], V any](r, other T, c collate.Collator[V]) bool {
	switch r.Overlaps(other, c) {
	case Wide, Equal:
		return true
	default:
		return false
	}
}

// ContainsPartial reports whether other and r share anything.
func ContainsPartial[T OverlapsRange[T, V], V any](r, other T, c collate.Collator[V]) bool {
	switch r.Overlaps(other, c) {
	case Less, Greater:
		return false
	default:
		return true
	}
}

// ContainsValue reports whether v lies within r.
func ContainsValue[T OverlapsValue[V], V any](r T, v V, c collate.Collator[V]) bool {
	switch r.OverlapsValue(v, c) {
	case Wide, Equal:
		return true
	default:
		return false
	}
}
