// Package errors holds error helpers shared by the multiview packages.
package errors

import "errors"

// Collection accumulates errors from a batch of independent operations, such as
// removing several values from a container, and reports them together.
// It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add records err. Nil errors are ignored, so the result of an operation can be
// passed straight in.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear forgets every recorded error.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if at least one error has been recorded.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of recorded errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil when nothing was recorded, the error itself when exactly
// one was, and an errors.Join of all of them otherwise. errors.Is matches every
// recorded error in the joined form.
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
