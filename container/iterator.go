package container

import (
	"github.com/amp-labs/seqsort/assert"
)

// Iterator is a cursor over a container's elements. It sits between
// elements: Next returns the element after the cursor and moves past it,
// Prev returns the element before the cursor and moves back over it.
//
// Iterating never changes the container. Changing the container while an
// iterator is in use is undefined: the iterator does not detect it.
type Iterator[T any] struct {
	c   *Container[T]
	pos int
}

// Begin returns an iterator positioned before the first element.
func (c *Container[T]) Begin() *Iterator[T] {
	return &Iterator[T]{c: c}
}

// End returns an iterator positioned after the last element.
func (c *Container[T]) End() *Iterator[T] {
	return &Iterator[T]{c: c, pos: c.Size()}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.pos < it.c.Size()
}

// Next returns the element after the cursor and advances.
// Calling Next when HasNext is false panics.
func (it *Iterator[T]) Next() T {
	assert.InRange(it.pos, 0, it.c.Size(), "container: Next past the end (position %d)", it.pos)

	v := it.c.items[it.pos]
	it.pos++

	return v
}

// HasPrev reports whether Prev would return an element.
func (it *Iterator[T]) HasPrev() bool {
	return it.pos > 0
}

// Prev steps back and returns the element it stepped over.
// Calling Prev when HasPrev is false panics.
func (it *Iterator[T]) Prev() T {
	assert.True(it.pos > 0, "container: Prev before the beginning")

	it.pos--

	return it.c.items[it.pos]
}

// Index returns the cursor position: the index of the element Next would
// return.
func (it *Iterator[T]) Index() int {
	return it.pos
}

// Equal reports whether both iterators walk the same container and sit at
// the same position.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return other != nil && it.c == other.c && it.pos == other.pos
}
