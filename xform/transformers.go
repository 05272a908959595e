// Package xform holds small string transformers with the shape func(A) (B, error),
// which envutil chains together to parse configuration values.
package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidChoice is returned by OneOf when a value is not among the allowed choices.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidLogLevel is returned when a log level string is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// OneOf returns a transformer that passes the allowed choices through and rejects
// anything else with ErrInvalidChoice.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses anything strconv.ParseBool accepts.
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// SlogLevel parses a level name in slog's own syntax: debug, info, warn or
// error, in any case, optionally offset as in "warn+2".
func SlogLevel(value string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}

	return level, nil
}
