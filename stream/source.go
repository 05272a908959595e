// Package stream combines two sorted sequences into one, lazily and in order.
//
// Merge interleaves both inputs and emits items present in both only once. Diff
// emits the items of the left input that have no equal counterpart in the right
// one. TryMerge and TryDiff do the same over inputs that can fail, and stop at
// the first failure.
//
// Every combinator is a pull-based state machine over two Sources. It holds at
// most one pending item per input, pulls from an input only when that slot is
// empty, and never sorts or de-duplicates within an input: both inputs must
// already be sorted ascending under the collator, or the output order is
// unspecified.
package stream

import (
	"context"
	"iter"

	"github.com/amp-labs/collate/try"
)

// Source is a pull-based sequence. Next returns the next item with ok set, or
// ok == false once the sequence is exhausted. A non-nil error means the source
// failed; callers stop pulling from it after that.
//
// Next may block. That is the only place a combinator waits.
type Source[T any] interface {
	Next(ctx context.Context) (item T, ok bool, err error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) (T, bool, error)

func (f SourceFunc[T]) Next(ctx context.Context) (T, bool, error) { //nolint:ireturn
	return f(ctx)
}

// FromSlice returns a Source that yields items in order.
func FromSlice[T any](items ...T) Source[T] { //nolint:ireturn
	return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
		var zero T

		if err := ctx.Err(); err != nil {
			return zero, false, err
		}

		if len(items) == 0 {
			return zero, false, nil
		}

		item := items[0]
		items = items[1:]

		return item, true, nil
	})
}

// FromSeq returns a Source pulling from seq. Call stop once the Source is no
// longer needed to release the iterator.
func FromSeq[T any](seq iter.Seq[T]) (src Source[T], stop func()) { //nolint:ireturn
	next, stop := iter.Pull(seq)

	return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
		if err := ctx.Err(); err != nil {
			var zero T

			return zero, false, err
		}

		item, ok := next()

		return item, ok, nil
	}), stop
}

// FromSeq2 returns a Source pulling from a sequence of fallible items. A non-nil
// error in the sequence becomes the Source's failure. Call stop once the Source
// is no longer needed.
func FromSeq2[T any](seq iter.Seq2[T, error]) (src Source[T], stop func()) { //nolint:ireturn
	next, stop := iter.Pull2(seq)

	return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
		var zero T

		if err := ctx.Err(); err != nil {
			return zero, false, err
		}

		item, err, ok := next()

		switch {
		case !ok:
			return zero, false, nil
		case err != nil:
			return zero, false, err
		default:
			return item, true, nil
		}
	}), stop
}

// FromChan returns a Source receiving from ch until it is closed.
// A canceled context is reported as the Source's failure.
func FromChan[T any](ch <-chan T) Source[T] { //nolint:ireturn
	return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
		select {
		case <-ctx.Done():
			var zero T

			return zero, false, ctx.Err()
		case item, ok := <-ch:
			return item, ok, nil
		}
	})
}

// FromTryChan is FromChan for channels carrying fallible items. A failed item
// becomes the Source's failure.
func FromTryChan[T any](ch <-chan try.Try[T]) Source[T] { //nolint:ireturn
	inner := FromChan(ch)

	return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
		var zero T

		result, ok, err := inner.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		item, err := result.Get()
		if err != nil {
			return zero, false, err
		}

		return item, true, nil
	})
}

// Collect drains src. On failure it returns the items pulled before the
// failure along with the error.
func Collect[T any](ctx context.Context, src Source[T]) ([]T, error) {
	var items []T

	for {
		item, ok, err := src.Next(ctx)
		if err != nil {
			return items, err
		}

		if !ok {
			return items, nil
		}

		items = append(items, item)
	}
}

// All returns an iterator over src. A failure is yielded once, with the zero
// item, and ends the iteration.
func All[T any](ctx context.Context, src Source[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, ok, err := src.Next(ctx)
			if err != nil {
				yield(item, err)

				return
			}

			if !ok || !yield(item, nil) {
				return
			}
		}
	}
}
