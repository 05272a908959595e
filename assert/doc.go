// Package assert provides invariant checks that are compiled in only for debug builds.
//
// Build with `-tags debug` to turn them on. Without the tag every function in this
// package is a no-op, so checks that would cost more than the operation they guard
// (like verifying a slice is sorted before a binary search) should go through Lazy,
// which never calls its check function in release builds.
package assert

import "fmt"

// fail panics with a message built from args.
// If the first arg is a string, it's used as a format string with the remaining args.
func fail(args ...any) {
	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}
