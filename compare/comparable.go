// Package compare provides the equality capability shared by every element
// that can be stored in a multiview container.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Equality is value-based and must be symmetric: a.Equals(b) == b.Equals(a).
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// NotEquals is the logical negation of Equals. Types should never implement
// inequality separately from equality.
func NotEquals[T any](a Comparable[T], b T) bool {
	return !a.Equals(b)
}

// IndexFunc returns a predicate that reports whether its argument equals value.
// It is meant for use with slices.IndexFunc, slices.DeleteFunc and friends.
func IndexFunc[T Comparable[T]](value T) func(T) bool {
	return func(candidate T) bool {
		return candidate.Equals(value)
	}
}
