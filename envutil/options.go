package envutil

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotAllowed is returned by OneOf when the value is not in the allowed set.
var ErrNotAllowed = errors.New("value not allowed")

// Option is a function which modifies a Reader. It's used by
// functions like String and Bool so that the caller can easily
// provide defaults, missing errors, and validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default allows you to provide a default value for the Reader.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// IfMissing allows you to provide an error to return if the
// Reader is missing a value.
func IfMissing[T any](err error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithErrorIfMissing(err)
	}
}

// Validate runs f on the value; a non-nil result becomes the Reader's error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}

// OneOf only accepts one of the allowed strings, compared case-insensitively.
// An accepted value is normalized to the spelling given in allowed.
func OneOf(allowed ...string) Option[string] {
	return func(rdr Reader[string]) Reader[string] {
		return rdr.Map(func(val string) (string, error) {
			idx := slices.IndexFunc(allowed, func(a string) bool {
				return strings.EqualFold(a, strings.TrimSpace(val))
			})
			if idx < 0 {
				return val, fmt.Errorf("%w: %q (expected one of %s)", ErrNotAllowed, val, strings.Join(allowed, ", "))
			}

			return allowed[idx], nil
		})
	}
}
