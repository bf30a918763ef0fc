// Package sortable provides the ordering capability used by multiview containers,
// along with sortable wrappers for primitive types.
package sortable

import (
	"github.com/amp-labs/multiview/compare"
)

// Sortable is a value with equality and a total order. LessThan must be a strict
// weak ordering consistent with Equals: if neither a.LessThan(b) nor b.LessThan(a),
// the two values are ordered as ties.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare orders a and b using LessThan only, returning -1, 0 or +1.
// Its signature matches slices.SortStableFunc and friends.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Reverse returns the inverse of Compare.
func Reverse[T Sortable[T]](a, b T) int {
	return Compare(b, a)
}
