//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is the result of looking up one variable: whether it was set, its
// (possibly transformed) value, and the first error met while transforming it.
// Readers are immutable; every method returns a new one.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

func (e Reader[A]) usable() bool {
	return e.present && e.err == nil
}

// Key returns the variable name.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value, ErrEnvVarMissing if the variable was unset with no
// default, or ErrBadEnvVar wrapping a transformation failure.
func (e Reader[A]) Value() (A, error) {
	switch {
	case e.err != nil:
		return e.value, fmt.Errorf("%w %s: %w (given value is %v)", ErrBadEnvVar, e.key, e.err, e.value)
	case !e.present:
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	default:
		return e.value, nil
	}
}

// ValueOrElse returns the value, or fallback if it is missing or malformed.
func (e Reader[A]) ValueOrElse(fallback A) A {
	if e.usable() {
		return e.value
	}

	return fallback
}

// HasValue reports whether Value would succeed.
func (e Reader[A]) HasValue() bool {
	return e.usable()
}

func (e Reader[A]) HasError() bool {
	return e.err != nil
}

// Error returns the transformation error, if any. A missing variable is not an error here.
func (e Reader[A]) Error() error {
	return e.err
}

func (e Reader[A]) String() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	case !e.present:
		return e.key + "=<not set>"
	default:
		return fmt.Sprintf("%s=%v", e.key, e.value)
	}
}

// WithErrorIfMissing makes an unset variable fail with err instead of ErrEnvVarMissing.
func (e Reader[A]) WithErrorIfMissing(err error) Reader[A] {
	if e.present || e.err != nil {
		return e
	}

	e.err = err

	return e
}

// WithDefault makes an unset variable read as dfl.
func (e Reader[A]) WithDefault(dfl A) Reader[A] {
	if e.present {
		return e
	}

	e.present = true
	e.value = dfl

	return e
}

// Map is the same-type form of the Map function, convenient for chaining.
func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] {
	return Map(e, f)
}

// Map transforms the value with f. Unset or failed Readers pass through untouched.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{key: env.key, present: env.present, err: env.err}

	if !env.usable() {
		return out
	}

	out.value, out.err = f(env.value)

	return out
}
