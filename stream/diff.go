package stream

import (
	"context"
	"iter"

	"github.com/amp-labs/collate/collate"
)

// Differ emits the items of a sorted left source that have no Equal counterpart in
// a sorted right source. It stops as soon as the left source is exhausted and
// pulls from the right source only as far as it needs to.
type Differ[T any] struct {
	machine[T]

	collator collate.Collator[T]
}

// DiffSources returns a Differ of left minus right, which must both be sorted under c.
func DiffSources[T any](c collate.Collator[T], left, right Source[T]) *Differ[T] {
	return &Differ[T]{
		machine:  newMachine(kindDiff, left, right),
		collator: c,
	}
}

// Next returns the next left item missing from right. After a failure, which is
// returned exactly once, and after the left input is exhausted, it returns ok == false.
func (d *Differ[T]) Next(ctx context.Context) (T, bool, error) { //nolint:ireturn
	for d.state != Done {
		d.state = Filling

		if err := d.left.fill(ctx); err != nil {
			return d.fail(ctx, err)
		}

		if d.left.exhausted() {
			return d.finish()
		}

		if err := d.right.fill(ctx); err != nil {
			return d.fail(ctx, err)
		}

		d.state = Emitting

		if !d.right.has() {
			// Nothing left on the right can match.
			return d.emit(d.left.pending.Take())
		}

		switch d.collator.Compare(d.left.peek(), d.right.peek()) {
		case collate.Less:
			return d.emit(d.left.pending.Take())
		case collate.Greater:
			// The right item might still match a later left item.
			d.right.pending.Clear()
			d.metrics.dropped.Inc()
		default:
			d.left.pending.Clear()
			d.right.pending.Clear()
			d.metrics.dropped.Add(2) //nolint:mnd
		}
	}

	var zero T

	return zero, false, nil
}

// Diff returns the items of the sorted sequence left that do not appear in the
// sorted sequence right, in their original order.
func Diff[T any](c collate.Collator[T], left, right iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		l, stopLeft := FromSeq(left)
		defer stopLeft()

		r, stopRight := FromSeq(right)
		defer stopRight()

		drain(DiffSources(c, l, r), yield)
	}
}

// TryDiff is Diff over fallible sequences. The first failure from either input
// is yielded, with the zero item, and ends the sequence.
func TryDiff[T any](c collate.Collator[T], left, right iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		l, stopLeft := FromSeq2(left)
		defer stopLeft()

		r, stopRight := FromSeq2(right)
		defer stopRight()

		for item, err := range All(context.Background(), DiffSources(c, l, r)) {
			if !yield(item, err) {
				return
			}
		}
	}
}
