// Package try carries the outcome of a fallible step as a single value,
// which is handy when results travel over a channel.
package try

// Try holds either a Value or an Error.
type Try[A any] struct {
	Value A
	Error error
}

// Success wraps a value.
func Success[A any](value A) Try[A] {
	return Try[A]{Value: value}
}

// Failure wraps an error.
func Failure[A any](err error) Try[A] {
	return Try[A]{Error: err}
}

// Of builds a Try from the usual (value, error) pair.
func Of[A any](value A, err error) Try[A] {
	if err != nil {
		return Failure[A](err)
	}

	return Success(value)
}

func (t Try[A]) IsSuccess() bool {
	return t.Error == nil
}

func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

// Get unpacks the Try. A failure never carries a value.
func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.IsFailure() {
		var zero A

		return zero, t.Error
	}

	return t.Value, nil
}

func Map[A, B any](t Try[A], f func(A) (B, error)) Try[B] {
	if t.IsSuccess() {
		return Of(f(t.Value))
	}

	return Failure[B](t.Error)
}
