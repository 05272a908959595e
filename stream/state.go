package stream

import (
	"context"
	"fmt"

	"github.com/amp-labs/collate/logger"
)

// State is the lifecycle stage of a combinator.
type State uint8

const (
	// Filling means the combinator is topping up its pending slots.
	Filling State = iota
	// Emitting means the combinator has what it needs to decide what comes next.
	Emitting
	// Done means the combinator has finished, either exhausted or failed.
	Done
)

func (s State) String() string {
	switch s {
	case Filling:
		return "Filling"
	case Emitting:
		return "Emitting"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// machine is the part shared by Merger and Differ: both inputs, the state, and the
// metrics for the combinator kind.
type machine[T any] struct {
	kind    string
	left    side[T]
	right   side[T]
	state   State
	metrics kindMetrics
}

func newMachine[T any](kind string, left, right Source[T]) machine[T] {
	return machine[T]{
		kind:    kind,
		left:    side[T]{src: left},
		right:   side[T]{src: right},
		metrics: metricsFor(kind),
	}
}

// State returns the combinator's current lifecycle stage.
func (m *machine[T]) State() State {
	return m.state
}

func (m *machine[T]) emit(item T) (T, bool, error) { //nolint:ireturn
	m.metrics.emitted.Inc()

	return item, true, nil
}

func (m *machine[T]) finish() (T, bool, error) { //nolint:ireturn
	var zero T

	m.state = Done

	return zero, false, nil
}

// fail ends the combinator. Whatever was pending is dropped and neither
// source is pulled again.
func (m *machine[T]) fail(ctx context.Context, err error) (T, bool, error) { //nolint:ireturn
	var zero T

	m.state = Done
	m.left.release()
	m.right.release()
	m.metrics.failures.Inc()

	logger.Get(ctx).Debug("input stream failed", "combinator", m.kind, "error", err)

	return zero, false, err
}
