// Package sortable describes types that know how to order themselves. Any
// Sortable type can be turned into a collator with collate.Sortable.
package sortable

// Comparable is the equality half of an ordering.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable is a type with both equality and a strict "less than".
// Implementations must describe a total order: for any a and b exactly one of
// a.LessThan(b), a.Equals(b) or b.LessThan(a) holds.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 in the manner of cmp.Compare.
// It calls LessThan at most twice and never calls Equals.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
