// Package errors holds the sentinel errors shared across the collate packages,
// plus a small utility for accumulating several errors into one.
package errors

import "errors"

var (
	// ErrUnknownCollator is returned when a collator is requested by a name
	// that the registry doesn't recognize.
	ErrUnknownCollator = errors.New("unknown collator")

	// ErrInvalidRange is returned when a range is built with an end bound
	// that precedes its start bound.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnknownMode is returned when a combinator mode other than merge or diff is requested.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnsupportedEncoding is returned when an input can't be decoded.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUnsorted is returned when an input that must be collated is found out of order.
	ErrUnsorted = errors.New("input is not sorted")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
