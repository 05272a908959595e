package stream

import (
	"context"

	"github.com/amp-labs/collate/optional"
)

// side is one input of a combinator: its source, whether the source has been
// exhausted (or failed), and the single item waiting to be compared.
type side[T any] struct {
	src     Source[T]
	done    bool
	pending optional.Value[T]
}

// fill pulls one item into the pending slot if the slot is empty and the
// source isn't done. A source failure marks the side done.
func (s *side[T]) fill(ctx context.Context) error {
	if s.done || s.pending.NonEmpty() {
		return nil
	}

	item, ok, err := s.src.Next(ctx)

	switch {
	case err != nil:
		s.done = true

		return err
	case !ok:
		s.done = true
	default:
		s.pending.Set(item)
	}

	return nil
}

func (s *side[T]) peek() T { //nolint:ireturn
	return s.pending.GetOrPanic()
}

func (s *side[T]) has() bool {
	return s.pending.NonEmpty()
}

// exhausted is true once the source is done and nothing is left pending.
func (s *side[T]) exhausted() bool {
	return s.done && s.pending.Empty()
}

// release drops the pending item and stops pulling from the source.
func (s *side[T]) release() {
	s.pending.Clear()
	s.done = true
}
