package sortable

import (
	"cmp"

	"facette.io/natsort"
)

// LessFunc is a strict weak ordering over T: it reports whether a must sort
// before b. Two values are treated as equivalent when neither is less than
// the other.
//
// Sorting entry points take a LessFunc explicitly instead of requiring T to
// implement an interface, so that any type can be sorted by any ordering.
type LessFunc[T any] func(a, b T) bool

// Ordered returns the natural < ordering for types that support it.
func Ordered[T cmp.Ordered]() LessFunc[T] {
	return cmp.Less[T]
}

// Of returns the ordering defined by a Sortable type's LessThan method.
func Of[T Sortable[T]]() LessFunc[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}

// By orders values by a projected cmp.Ordered key.
//
// Example:
//
//	byAge := sortable.By(func(p Person) int { return p.Age })
func By[T any, K cmp.Ordered](key func(T) K) LessFunc[T] {
	return func(a, b T) bool {
		return key(a) < key(b)
	}
}

// Natural orders strings so that embedded numbers compare numerically
// ("file2" sorts before "file10").
func Natural() LessFunc[string] {
	return natsort.Compare
}

// Reverse inverts an ordering. Equivalent values stay equivalent.
func Reverse[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// Equivalent reports whether neither value orders before the other.
func (l LessFunc[T]) Equivalent(a, b T) bool {
	return !l(a, b) && !l(b, a)
}
