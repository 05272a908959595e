package collate

import "go.uber.org/atomic"

// CountingCollator wraps another collator and counts how many times Compare is called.
// It is safe for concurrent use.
type CountingCollator[V any] struct {
	inner Collator[V]
	calls atomic.Int64
}

var _ Collator[int] = (*CountingCollator[int])(nil)

// Counting wraps c so its comparisons can be counted.
func Counting[V any](c Collator[V]) *CountingCollator[V] {
	return &CountingCollator[V]{inner: c}
}

func (c *CountingCollator[V]) Compare(a, b V) Ordering {
	c.calls.Inc()

	return c.inner.Compare(a, b)
}

// Calls returns the number of comparisons made so far.
func (c *CountingCollator[V]) Calls() int64 {
	return c.calls.Load()
}

// Reset sets the call count back to zero and returns the previous count.
func (c *CountingCollator[V]) Reset() int64 {
	return c.calls.Swap(0)
}
