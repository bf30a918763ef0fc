package sortable

import (
	"facette.io/natsort"
	"golang.org/x/text/unicode/norm"
)

// String orders byte-wise, the way Go's < operator does.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

func (s String) String() string {
	return string(s)
}

// NaturalString orders numbers embedded in the text numerically,
// so "item2" sorts before "item10". Strings whose numbers only differ in
// leading zeros, such as "a01" and "a1", fall back to byte order, and the
// empty string sorts first.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	a, b := string(s), string(other)

	switch {
	case a == b:
		return false
	case a == "" || b == "":
		return a == ""
	}

	// natsort reports both directions as less when the numbers tie.
	forward, backward := natsort.Compare(a, b), natsort.Compare(b, a)
	if forward != backward {
		return forward
	}

	return a < b
}

func (s NaturalString) String() string {
	return string(s)
}

// NormalizedString compares on the Unicode NFC form, so a precomposed "é"
// and "e" followed by a combining acute accent are equal and sort together.
// The original spelling is kept for display.
type NormalizedString string

var _ Sortable[NormalizedString] = (*NormalizedString)(nil)

func (s NormalizedString) Equals(other NormalizedString) bool {
	return norm.NFC.String(string(s)) == norm.NFC.String(string(other))
}

func (s NormalizedString) LessThan(other NormalizedString) bool {
	return norm.NFC.String(string(s)) < norm.NFC.String(string(other))
}

func (s NormalizedString) String() string {
	return string(s)
}
