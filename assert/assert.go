// Package assert provides type assertion utilities with error handling, and
// panicking invariant checks for programming errors.
//
// The invariant checks (True, False, NotNil, InRange) compile to no-ops when
// built with the assertions_disabled tag. Type always runs: it reports bad
// input, not bugs.
package assert

import (
	"fmt"

	"github.com/amp-labs/seqsort/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}

// fail panics with a message built from the optional args:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func fail(fallback string, args ...any) {
	if len(args) == 0 {
		panic(fallback)
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("%s: %v", fallback, args))
}
