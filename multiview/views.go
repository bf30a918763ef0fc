package multiview

import (
	"fmt"
	"iter"
	"strings"
)

// Forward yields the elements in insertion order.
func (c *Container[T]) Forward() iter.Seq[T] {
	return c.View(Forward)
}

// Reverse yields the elements in reverse insertion order.
func (c *Container[T]) Reverse() iter.Seq[T] {
	return c.View(Reverse)
}

// Ascending yields the elements from smallest to largest. Equal-ranked
// elements keep their insertion order.
func (c *Container[T]) Ascending() iter.Seq[T] {
	return c.View(Ascending)
}

// Descending yields the Ascending view back to front, so equal-ranked elements
// appear in reverse insertion order.
func (c *Container[T]) Descending() iter.Seq[T] {
	return c.View(Descending)
}

// SideCross alternates between the smallest and largest remaining elements of
// the Ascending view, starting with the smallest. For an odd number of
// elements the median comes last.
func (c *Container[T]) SideCross() iter.Seq[T] {
	return c.View(SideCross)
}

// MiddleOut starts at the lower median of the Ascending view and then steps
// outwards, left before right at each distance, finishing with whichever side
// is longer.
func (c *Container[T]) MiddleOut() iter.Seq[T] {
	return c.View(MiddleOut)
}

// View yields the elements in the given order. Each range re-reads the
// container, so a view obtained before a mutation reflects the mutation when
// ranged over afterwards. An invalid order yields nothing.
func (c *Container[T]) View(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range c.Positions(order) {
			if !yield(value) {
				return
			}
		}
	}
}

// Positions yields each element of the given order together with its position
// in insertion order.
func (c *Container[T]) Positions(order Order) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		values := c.values

		var sorted []int
		if order.Derived() {
			sorted = c.sortedPositions()
		}

		for rank := range ranks(order, len(values)) {
			pos := rank
			if order.Derived() {
				pos = sorted[rank]
			}

			if !yield(pos, values[pos]) {
				return
			}
		}
	}
}

// Collect materializes the given order into a new slice. The result is never
// nil.
func (c *Container[T]) Collect(order Order) []T {
	out := make([]T, 0, len(c.values))

	for value := range c.View(order) {
		out = append(out, value)
	}

	return out
}

// Join renders every value of seq with its String method, separated by sep.
func Join[T fmt.Stringer](seq iter.Seq[T], sep string) string {
	var sb strings.Builder

	first := true

	for value := range seq {
		if !first {
			sb.WriteString(sep)
		}

		sb.WriteString(value.String())

		first = false
	}

	return sb.String()
}
