package stream

import (
	"context"
	"fmt"

	"github.com/amp-labs/collate/collate"
	"github.com/amp-labs/collate/errors"
	"github.com/amp-labs/collate/optional"
)

// Checked wraps src so that it fails with errors.ErrUnsorted as soon as an item
// compares Less than the one before it. Equal neighbours are allowed. After the
// failure the source reports exhaustion without pulling src again.
func Checked[T any](c collate.Collator[T], src Source[T]) Source[T] { //nolint:ireturn
	var (
		previous optional.Value[T]
		position int
		failed   bool
	)

	return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
		var zero T

		if failed {
			return zero, false, nil
		}

		item, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return item, ok, err
		}

		position++

		if prev, has := previous.Get(); has && c.Compare(item, prev) == collate.Less {
			failed = true

			return zero, false, fmt.Errorf("%w: item %d (%v) comes before %v", errors.ErrUnsorted, position, item, prev)
		}

		previous.Set(item)

		return item, true, nil
	})
}
