package sorting

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Identity is the key function for string elements.
func Identity(s string) string {
	return s
}

// Stringer keys elements by their String method.
func Stringer[T fmt.Stringer]() KeyFunc[T] {
	return func(v T) string {
		return v.String()
	}
}

// Sprint keys elements by their default fmt formatting (%v).
func Sprint[T any]() KeyFunc[T] {
	return func(v T) string {
		return fmt.Sprint(v)
	}
}

// NFC wraps key so that every extracted key is put into Unicode normalization
// form C before partitioning, so "e\u0301" and "\u00e9" share a bucket.
// A nil key stays nil, so the sort still reports a missing key function.
func NFC[T any](key KeyFunc[T]) KeyFunc[T] {
	if key == nil {
		return nil
	}

	return func(v T) string {
		return norm.NFC.String(key(v))
	}
}
