// Package closer collects io.Closer values so a stack of wrapped readers can be torn
// down with a single call.
package closer

import (
	"io"
	"sync"

	"github.com/amp-labs/collate/errors"
)

type funcCloser func() error

func (f funcCloser) Close() error {
	return f()
}

// CustomCloser turns a cleanup function into an io.Closer. It returns nil for a nil function.
func CustomCloser(closeFn func() error) io.Closer {
	if closeFn == nil {
		return nil
	}

	return funcCloser(closeFn)
}

// Closer closes every closer added to it, in the order they were added.
//
//	c := NewCloser()
//	c.Add(decoder)
//	c.Add(file)
//	return c.Close()
//
// Add is not safe for concurrent use.
type Closer struct {
	closers []io.Closer
}

// NewCloser creates a Closer holding the given closers.
func NewCloser(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add registers another closer. Nil closers are skipped on Close.
func (c *Closer) Add(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Len returns the number of registered closers.
func (c *Closer) Len() int {
	return len(c.closers)
}

// Close closes every registered closer, even after a failure, and joins the errors.
func (c *Closer) Close() error {
	var errs errors.Collection

	for _, closer := range c.closers {
		if closer != nil {
			errs.Add(closer.Close())
		}
	}

	return errs.GetError()
}

type closeOnce struct {
	mut    sync.Mutex
	closed bool
	closer io.Closer
}

// CloseOnce wraps closer so only the first successful Close reaches it.
// A failed Close is not remembered, so the next call retries.
func CloseOnce(closer io.Closer) io.Closer {
	if closer == nil {
		return nil
	}

	if once, ok := closer.(*closeOnce); ok {
		return once
	}

	return &closeOnce{closer: closer}
}

func (c *closeOnce) Close() error {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.closed {
		return nil
	}

	if err := c.closer.Close(); err != nil {
		return err
	}

	c.closed = true

	return nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// ReadCloser pairs a reader with the closer that releases whatever sits beneath it.
func ReadCloser(r io.Reader, c io.Closer) io.ReadCloser {
	if c == nil {
		return io.NopCloser(r)
	}

	return readCloser{Reader: r, Closer: c}
}
