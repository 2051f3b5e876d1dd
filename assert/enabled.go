//go:build !assertions_disabled

package assert

import "fmt"

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	fail("assertion failed", args...)
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil asserts that the given value is not nil.
// The optional args are passed to True and follow the same formatting rules.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}

// InRange asserts that lo <= index < hi. With no args the panic message
// names the index and bounds.
func InRange(index, lo, hi int, args ...any) {
	if index >= lo && index < hi {
		return
	}

	fail(fmt.Sprintf("index %d out of range [%d, %d)", index, lo, hi), args...)
}
