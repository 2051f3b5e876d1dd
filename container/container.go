// Package container provides Container, a generic resizable ordered sequence
// with value semantics, and the Iterator that walks it.
//
// A Container owns its backing slice. New, Copy and Assign always copy the
// elements into fresh storage, and Values hands out a copy, so two containers
// never alias each other and callers never alias a container. Element values
// are copied with ordinary Go assignment: a container of pointers copies the
// pointers, not what they point at.
//
// Checked operations (At, Front, Back, PopBack, Insert, Erase) either succeed
// completely or return an error and leave the container exactly as it was.
// Get and Set are the unchecked counterparts and panic on a bad index, like
// slice indexing.
//
// A Container is not safe for concurrent use.
package container

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/seqsort/errors"
	"github.com/amp-labs/seqsort/sortable"
	"github.com/amp-labs/seqsort/sorting"
	"github.com/amp-labs/seqsort/zero"
)

// Container is an ordered sequence of T. The zero value is an empty
// container ready to use.
type Container[T any] struct {
	items []T
}

// New returns a container holding a copy of items, in order.
func New[T any](items ...T) *Container[T] {
	c := &Container[T]{}
	c.items = append(make([]T, 0, len(items)), items...)

	return c
}

// FromSeq returns a container holding everything seq yields, in order.
func FromSeq[T any](seq iter.Seq[T]) *Container[T] {
	return &Container[T]{items: slices.Collect(seq)}
}

// Copy returns an independent copy of other. A nil other copies to an empty
// container.
func Copy[T any](other *Container[T]) *Container[T] {
	if other == nil {
		return New[T]()
	}

	return New(other.items...)
}

// Assign replaces the contents of c with a copy of other's and returns c.
// Assigning a container to itself is a no-op. A nil other clears c.
func (c *Container[T]) Assign(other *Container[T]) *Container[T] {
	if c == other {
		return c
	}

	if other == nil {
		c.Clear()

		return c
	}

	c.items = other.Values()

	return c
}

// Size returns the number of elements.
func (c *Container[T]) Size() int {
	return len(c.items)
}

// Empty reports whether the container has no elements.
func (c *Container[T]) Empty() bool {
	return len(c.items) == 0
}

// Clear removes every element.
func (c *Container[T]) Clear() {
	clear(c.items)
	c.items = c.items[:0]
}

// At returns the element at index i, or ErrIndexOutOfRange when i is not in
// [0, Size()).
func (c *Container[T]) At(i int) (T, error) {
	if i < 0 || i >= len(c.items) {
		return zero.Value[T](), errors.IndexOutOfRange("at", i, len(c.items))
	}

	return c.items[i], nil
}

// Front returns the first element, or ErrEmptyContainer.
func (c *Container[T]) Front() (T, error) {
	if c.Empty() {
		return zero.Value[T](), fmt.Errorf("%w: front", errors.ErrEmptyContainer)
	}

	return c.items[0], nil
}

// Back returns the last element, or ErrEmptyContainer.
func (c *Container[T]) Back() (T, error) {
	if c.Empty() {
		return zero.Value[T](), fmt.Errorf("%w: back", errors.ErrEmptyContainer)
	}

	return c.items[len(c.items)-1], nil
}

// Get returns the element at index i without a bounds check of its own.
// An invalid index panics.
func (c *Container[T]) Get(i int) T {
	return c.items[i]
}

// Set overwrites the element at index i without a bounds check of its own.
// An invalid index panics.
func (c *Container[T]) Set(i int, v T) {
	c.items[i] = v
}

// PushBack appends v.
func (c *Container[T]) PushBack(v T) {
	c.items = append(c.items, v)
}

// PopBack removes and returns the last element, or returns ErrEmptyContainer
// and leaves c untouched.
func (c *Container[T]) PopBack() (T, error) {
	if c.Empty() {
		return zero.Value[T](), fmt.Errorf("%w: pop back", errors.ErrEmptyContainer)
	}

	last := len(c.items) - 1
	v := c.items[last]

	c.items[last] = zero.Value[T]()
	c.items = c.items[:last]

	return v, nil
}

// Insert places v at index i, shifting later elements right. i may equal
// Size() to append. Any other out of range index returns ErrIndexOutOfRange
// and leaves c untouched.
func (c *Container[T]) Insert(i int, v T) error {
	if i < 0 || i > len(c.items) {
		return errors.IndexOutOfRange("insert", i, len(c.items))
	}

	c.items = slices.Insert(c.items, i, v)

	return nil
}

// Erase removes the element at index i, shifting later elements left.
// An index outside [0, Size()) returns ErrIndexOutOfRange and leaves c
// untouched.
func (c *Container[T]) Erase(i int) error {
	if i < 0 || i >= len(c.items) {
		return errors.IndexOutOfRange("erase", i, len(c.items))
	}

	c.items = slices.Delete(c.items, i, i+1)

	return nil
}

// Values returns a copy of the elements in order. The result never aliases
// the container and is never nil.
func (c *Container[T]) Values() []T {
	return append(make([]T, 0, len(c.items)), c.items...)
}

// Replace swaps the contents of c for a copy of items.
func (c *Container[T]) Replace(items []T) {
	c.items = append(make([]T, 0, len(items)), items...)
}

// All returns an iterator over index, element pairs in order.
func (c *Container[T]) All() iter.Seq2[int, T] {
	return slices.All(c.items)
}

// Seq returns an iterator over the elements in order.
func (c *Container[T]) Seq() iter.Seq[T] {
	return slices.Values(c.items)
}

// Backward returns an iterator over index, element pairs from last to first.
func (c *Container[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(c.items)
}

// SortTree sorts the container in place with a binary tree sort. Equal
// elements keep their relative order. See sorting.TreeSort.
func (c *Container[T]) SortTree(less sortable.LessFunc[T]) {
	sorting.TreeSort(c.items, less)
}

// SortMSD sorts the container in place with an MSD radix sort over the keys
// extracted by key. A nil key returns ErrMissingKeyFunction and leaves c
// untouched. See sorting.MSDRadixSort.
func (c *Container[T]) SortMSD(key sorting.KeyFunc[T]) error {
	return sorting.MSDRadixSort(c.items, key)
}

// SortMSDAny is SortMSD for dynamically typed key extractors. A key that is
// not a string returns ErrInvalidKeyType and leaves c untouched.
func (c *Container[T]) SortMSDAny(key func(T) any) error {
	return sorting.MSDRadixSortAny(c.items, key)
}

// String renders the elements as "{e1, e2, ...}" using %v for each element.
// An empty container renders as "{}".
func (c *Container[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, v := range c.items {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, v)
	}

	sb.WriteByte('}')

	return sb.String()
}

// GoString renders the container as the Go expression that rebuilds it,
// for %#v.
func (c *Container[T]) GoString() string {
	parts := make([]string, 0, len(c.items))
	for _, v := range c.items {
		parts = append(parts, fmt.Sprintf("%#v", v))
	}

	return "container.New(" + strings.Join(parts, ", ") + ")"
}
