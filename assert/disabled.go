//go:build !debug

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True is a no-op in release builds.
func True(bool, ...any) {}

// False is a no-op in release builds.
func False(bool, ...any) {}

// NotNil is a no-op in release builds.
func NotNil(any, ...any) {}

// Lazy is a no-op in release builds. The check function is never called.
func Lazy(func() bool, ...any) {}
