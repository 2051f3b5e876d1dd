package container

import (
	"cmp"
	"slices"

	"github.com/amp-labs/seqsort/compare"
	"github.com/amp-labs/seqsort/sortable"
)

// values returns the backing slice of c, treating nil as empty.
func values[T any](c *Container[T]) []T {
	if c == nil {
		return nil
	}

	return c.items
}

// Equal reports whether a and b hold equal elements in the same order.
// A nil container equals an empty one.
func Equal[T comparable](a, b *Container[T]) bool {
	return slices.Equal(values(a), values(b))
}

// EqualFunc is Equal for element types without ==.
func EqualFunc[T any](a, b *Container[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(values(a), values(b), eq)
}

// Compare compares a and b lexicographically: the first differing element
// decides, and a strict prefix is less than the longer sequence. The result
// is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Container[T]) int {
	return slices.Compare(values(a), values(b))
}

// CompareFunc is Compare under an explicit ordering. Elements that are
// equivalent under less (neither orders before the other) compare equal.
func CompareFunc[T any](a, b *Container[T], less sortable.LessFunc[T]) int {
	return slices.CompareFunc(values(a), values(b), func(x, y T) int {
		switch {
		case less(x, y):
			return -1
		case less(y, x):
			return 1
		default:
			return 0
		}
	})
}

// Less reports whether a sorts before b.
func Less[T cmp.Ordered](a, b *Container[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a sorts before or equal to b.
func LessOrEqual[T cmp.Ordered](a, b *Container[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a sorts after b.
func Greater[T cmp.Ordered](a, b *Container[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a sorts after or equal to b.
func GreaterOrEqual[T cmp.Ordered](a, b *Container[T]) bool {
	return Compare(a, b) >= 0
}

// asContainer unwraps other into a *Container[T] if it is one.
func asContainer[T any](other any) (*Container[T], bool) {
	switch o := other.(type) {
	case *Container[T]:
		return o, o != nil
	case Container[T]:
		return &o, true
	default:
		return nil, false
	}
}

// Equals reports whether other is a container of the same element type
// holding eq-equal elements in the same order. Anything else is unequal.
func (c *Container[T]) Equals(other any, eq func(x, y T) bool) bool {
	o, ok := asContainer[T](other)
	if !ok {
		return false
	}

	return EqualFunc(c, o, eq)
}

// CompareTo orders c against other lexicographically under less. When other
// is not a container of the same element type (including a nil pointer) the
// result is compare.Incomparable rather than an error.
func (c *Container[T]) CompareTo(other any, less sortable.LessFunc[T]) compare.Ordering {
	o, ok := asContainer[T](other)
	if !ok {
		return compare.Incomparable
	}

	return compare.FromInt(CompareFunc(c, o, less))
}
