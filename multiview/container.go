package multiview

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/amp-labs/multiview/compare"
	amperrors "github.com/amp-labs/multiview/errors"
	"github.com/amp-labs/multiview/sortable"
)

// ErrElementNotFound is returned by Remove when no stored element equals the
// requested value.
var ErrElementNotFound = errors.New("element not found")

// Container stores elements in insertion order, duplicates allowed, and exposes
// six traversal orders over them. The zero value is an empty container ready
// to use.
type Container[T Element[T]] struct {
	values []T

	// version counts mutations. The sorted positions are only served while
	// sortedVersion matches it.
	version       uint64
	sorted        []int
	sortedVersion uint64
	sortedValid   bool
}

// New creates a container holding values, in the given order.
func New[T Element[T]](values ...T) *Container[T] {
	c := &Container[T]{}
	c.AddAll(values...)

	return c
}

// Add appends value to the end of the container. It always succeeds.
func (c *Container[T]) Add(value T) {
	c.values = append(c.values, value)
	c.version++
}

// AddAll appends every value, in order.
func (c *Container[T]) AddAll(values ...T) {
	if len(values) == 0 {
		return
	}

	c.values = append(c.values, values...)
	c.version++
}

// Remove deletes every element equal to value, keeping the relative order of
// the rest. If nothing equals value, it returns an error wrapping
// ErrElementNotFound and the container is left untouched.
func (c *Container[T]) Remove(value T) error {
	matches := compare.IndexFunc(value)

	if !slices.ContainsFunc(c.values, matches) {
		return fmt.Errorf("%w: %s", ErrElementNotFound, value)
	}

	c.values = slices.DeleteFunc(c.values, matches)
	c.version++

	return nil
}

// RemoveAll calls Remove for each value independently. Values that are found
// are removed even when others are not; the not-found errors are joined.
func (c *Container[T]) RemoveAll(values ...T) error {
	var errs amperrors.Collection

	for _, value := range values {
		errs.Add(c.Remove(value))
	}

	return errs.GetError()
}

// Contains reports whether any element equals value.
func (c *Container[T]) Contains(value T) bool {
	return slices.ContainsFunc(c.values, compare.IndexFunc(value))
}

// Count returns how many elements equal value.
func (c *Container[T]) Count(value T) int {
	count := 0

	for _, v := range c.values {
		if compare.Equals[T](v, value) {
			count++
		}
	}

	return count
}

// Size returns the number of stored elements.
func (c *Container[T]) Size() int {
	return len(c.values)
}

// Clear removes every element.
func (c *Container[T]) Clear() {
	clear(c.values)
	c.values = c.values[:0]
	c.version++
}

// Entries returns a copy of the elements in insertion order. The result is
// never nil.
func (c *Container[T]) Entries() []T {
	out := make([]T, len(c.values))
	copy(out, c.values)

	return out
}

// Min returns the first element of the ascending view.
func (c *Container[T]) Min() (T, bool) {
	var zero T

	sorted := c.sortedPositions()
	if len(sorted) == 0 {
		return zero, false
	}

	return c.values[sorted[0]], true
}

// Max returns the first element of the descending view.
func (c *Container[T]) Max() (T, bool) {
	var zero T

	sorted := c.sortedPositions()
	if len(sorted) == 0 {
		return zero, false
	}

	return c.values[sorted[len(sorted)-1]], true
}

// String renders the elements in insertion order, separated by ", ".
func (c *Container[T]) String() string {
	return Join(c.Forward(), ", ")
}

// MarshalJSON encodes the container as a JSON array in insertion order.
func (c *Container[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Entries())
}

// MarshalYAML encodes the container as a YAML sequence in insertion order.
func (c *Container[T]) MarshalYAML() (any, error) {
	return c.Entries(), nil
}

// sortedPositions returns backing positions in ascending order of their
// elements. Ties keep insertion order. The slice is shared with later callers
// until the next mutation and must not be modified.
func (c *Container[T]) sortedPositions() []int {
	if c.sortedValid && c.sortedVersion == c.version {
		return c.sorted
	}

	positions := make([]int, len(c.values))
	for i := range positions {
		positions[i] = i
	}

	slices.SortStableFunc(positions, func(a, b int) int {
		return sortable.Compare(c.values[a], c.values[b])
	})

	c.sorted = positions
	c.sortedVersion = c.version
	c.sortedValid = true

	return positions
}
