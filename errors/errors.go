// Package errors holds the sentinel errors shared by the container and sorting
// packages, plus a small utility for accumulating errors.
//
// Callers match sentinels with errors.Is; the messages carry the offending
// index, size or type as wrapped context.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrWrongType      = errors.New("wrong type")

	// ErrIndexOutOfRange is returned when an index falls outside the valid
	// range for the operation (at/erase: [0, size), insert: [0, size]).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyContainer is returned by front, back and pop on an empty
	// container. It matches ErrIndexOutOfRange as well.
	ErrEmptyContainer = fmt.Errorf("%w: container is empty", ErrIndexOutOfRange)

	// ErrMissingKeyFunction is returned when the radix sort is invoked without
	// a key extractor.
	ErrMissingKeyFunction = errors.New("missing key function")

	// ErrInvalidKeyType is returned when a key extractor produces something
	// other than a string. It matches ErrWrongType as well.
	ErrInvalidKeyType = fmt.Errorf("%w: invalid key type", ErrWrongType)
)

// IndexOutOfRange wraps ErrIndexOutOfRange with the failing index and the
// size of the sequence at the time of the call.
func IndexOutOfRange(op string, index, size int) error {
	return fmt.Errorf("%w: %s index %d, size %d", ErrIndexOutOfRange, op, index, size)
}

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
