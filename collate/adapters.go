package collate

import (
	"bytes"
	"cmp"

	"github.com/amp-labs/collate/sortable"
	"github.com/google/uuid"
)

// Bytes orders byte slices lexicographically, like bytes.Compare.
func Bytes() Collator[[]byte] {
	return FromCmp(bytes.Compare)
}

// UUID orders UUIDs by their raw bytes. For version 7 UUIDs this is creation-time order.
func UUID() Collator[uuid.UUID] {
	return Func[uuid.UUID](func(a, b uuid.UUID) Ordering {
		return FromInt(bytes.Compare(a[:], b[:]))
	})
}

// Complex128 orders complex numbers by magnitude. Numbers on the same circle
// (1 and -1, say) compare Equal, so this is a total preorder over complex128 and
// a total order over magnitudes.
func Complex128() Collator[complex128] {
	return Func[complex128](func(a, b complex128) Ordering {
		return FromInt(cmp.Compare(normSquared(a), normSquared(b)))
	})
}

// Complex64 is Complex128 for complex64 values.
func Complex64() Collator[complex64] {
	return Func[complex64](func(a, b complex64) Ordering {
		return FromInt(cmp.Compare(normSquared(complex128(a)), normSquared(complex128(b))))
	})
}

func normSquared(c complex128) float64 {
	re, im := real(c), imag(c)

	return re*re + im*im
}

// Sortable adapts any type that orders itself (see package sortable) into a Collator.
func Sortable[T sortable.Sortable[T]]() Collator[T] {
	return FromCmp(sortable.Compare[T])
}
