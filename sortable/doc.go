// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of ordered views.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/multiview/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// Every wrapper in this package also implements fmt.Stringer, so it satisfies
// [github.com/amp-labs/multiview/multiview.Element] and can be stored in a
// container directly:
//
//	c := multiview.New[sortable.Int](9, 5, 7, 3, 1)
//	for v := range c.MiddleOut() {
//	    fmt.Println(v) // 5 3 7 1 9
//	}
//
// The wrappers are:
//   - [Int] and [Uint] for integers
//   - [Byte] for single characters
//   - [String] for byte-wise lexical ordering
//   - [NaturalString] for natural ordering ("file2" before "file10")
//   - [NormalizedString] for ordering on the Unicode NFC form
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    return t.Priority < other.Priority
//	}
//
// Ordering may be coarser than equality, as above: two tasks with the same
// priority are ties for sorting purposes yet remain distinct values.
package sortable
