//go:build debug

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if !value {
		fail(args...)
	}
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil asserts that the given value is not nil.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}

// Lazy runs check and asserts that it returned true.
func Lazy(check func() bool, args ...any) {
	True(check(), args...)
}
