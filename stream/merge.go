package stream

import (
	"context"
	"iter"

	"github.com/amp-labs/collate/collate"
)

// Merger interleaves two sorted sources. When the pending items of both inputs
// compare Equal, the left one is emitted and the right one dropped.
type Merger[T any] struct {
	machine[T]

	collator collate.Collator[T]
}

// MergeSources returns a Merger over left and right, which must both be sorted under c.
func MergeSources[T any](c collate.Collator[T], left, right Source[T]) *Merger[T] {
	return &Merger[T]{
		machine:  newMachine(kindMerge, left, right),
		collator: c,
	}
}

// Next returns the smallest item not yet emitted. After a failure, which is
// returned exactly once, and after both inputs are exhausted, it returns ok == false.
func (m *Merger[T]) Next(ctx context.Context) (T, bool, error) { //nolint:ireturn
	if m.state == Done {
		var zero T

		return zero, false, nil
	}

	m.state = Filling

	if err := m.left.fill(ctx); err != nil {
		return m.fail(ctx, err)
	}

	if err := m.right.fill(ctx); err != nil {
		return m.fail(ctx, err)
	}

	m.state = Emitting

	switch {
	case m.left.has() && m.right.has():
		switch m.collator.Compare(m.left.peek(), m.right.peek()) {
		case collate.Less:
			return m.emit(m.left.pending.Take())
		case collate.Greater:
			return m.emit(m.right.pending.Take())
		default:
			m.right.pending.Clear()
			m.metrics.dropped.Inc()

			return m.emit(m.left.pending.Take())
		}
	case m.left.has():
		return m.emit(m.left.pending.Take())
	case m.right.has():
		return m.emit(m.right.pending.Take())
	default:
		return m.finish()
	}
}

// Merge interleaves two sorted sequences into one sorted sequence. Items that
// appear in both are emitted once.
func Merge[T any](c collate.Collator[T], left, right iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		l, stopLeft := FromSeq(left)
		defer stopLeft()

		r, stopRight := FromSeq(right)
		defer stopRight()

		drain(MergeSources(c, l, r), yield)
	}
}

// TryMerge is Merge over fallible sequences. The first failure from either
// input is yielded, with the zero item, and ends the sequence.
func TryMerge[T any](c collate.Collator[T], left, right iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		l, stopLeft := FromSeq2(left)
		defer stopLeft()

		r, stopRight := FromSeq2(right)
		defer stopRight()

		for item, err := range All(context.Background(), MergeSources(c, l, r)) {
			if !yield(item, err) {
				return
			}
		}
	}
}

// drain feeds every item of an infallible source to yield.
func drain[T any](src Source[T], yield func(T) bool) {
	for item, err := range All(context.Background(), src) {
		if err != nil || !yield(item) {
			return
		}
	}
}
