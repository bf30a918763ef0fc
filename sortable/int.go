package sortable

import "strconv"

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// Uint is a sortable wrapper type for the built-in uint type.
type Uint uint

var _ Sortable[Uint] = (*Uint)(nil)

// Equals returns true if this Uint has the same value as the other Uint.
func (u Uint) Equals(other Uint) bool {
	return uint(u) == uint(other)
}

// LessThan returns true if this Uint is numerically less than the other Uint.
func (u Uint) LessThan(other Uint) bool {
	return uint(u) < uint(other)
}

func (u Uint) String() string {
	return strconv.FormatUint(uint64(u), 10)
}
