package sortable

// Byte is a sortable wrapper type for a single-byte character.
// It orders by byte value and displays as the character itself:
//
//	sortable.Byte('d').String() // "d"
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

func (b Byte) String() string {
	return string([]byte{byte(b)})
}
