package multiview

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrder is returned when parsing a name that is not a known Order.
var ErrUnknownOrder = errors.New("unknown traversal order")

// Order names one of the six traversals a Container supports.
type Order int

const (
	Forward Order = iota
	Reverse
	Ascending
	Descending
	SideCross
	MiddleOut
)

var orderNames = [...]string{ //nolint:gochecknoglobals
	Forward:    "forward",
	Reverse:    "reverse",
	Ascending:  "ascending",
	Descending: "descending",
	SideCross:  "side-cross",
	MiddleOut:  "middle-out",
}

// AllOrders returns every Order, in declaration order.
func AllOrders() []Order {
	return []Order{Forward, Reverse, Ascending, Descending, SideCross, MiddleOut}
}

// Valid reports whether o is one of the declared orders.
func (o Order) Valid() bool {
	return o >= Forward && o <= MiddleOut
}

// Derived reports whether o is computed from the sorted form rather than
// read straight from the backing sequence.
func (o Order) Derived() bool {
	return o.Valid() && o != Forward && o != Reverse
}

func (o Order) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// ParseOrder parses an order name. Matching ignores case, and hyphens and
// underscores are optional, so "middle-out", "MiddleOut" and "middle_out" are
// all accepted.
func ParseOrder(name string) (Order, error) {
	key := canonicalOrderName(name)

	for _, o := range AllOrders() {
		if canonicalOrderName(orderNames[o]) == key {
			return o, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

func canonicalOrderName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(o))
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(text []byte) error {
	parsed, err := ParseOrder(string(text))
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}
