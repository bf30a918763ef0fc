// Package animal provides a small value type used as sample payload for
// multiview containers.
package animal

import (
	"fmt"

	"github.com/amp-labs/multiview/compare"
	"github.com/amp-labs/multiview/sortable"
)

// Animal is equal to another Animal when both name and age match, and is
// ordered by age alone. Two animals of the same age are therefore ties in
// every sorted view while remaining distinct values.
type Animal struct {
	Name string `json:"name" yaml:"name"`
	Age  uint   `json:"age"  yaml:"age"`
}

var _ sortable.Sortable[Animal] = Animal{}

// New creates an Animal.
func New(name string, age uint) Animal {
	return Animal{Name: name, Age: age}
}

func (a Animal) Equals(other Animal) bool {
	return a.Age == other.Age && a.Name == other.Name
}

// NotEquals is the negation of Equals.
func (a Animal) NotEquals(other Animal) bool {
	return compare.NotEquals(a, other)
}

func (a Animal) LessThan(other Animal) bool {
	return a.Age < other.Age
}

func (a Animal) String() string {
	return fmt.Sprintf("Name: %s. Age: %d", a.Name, a.Age)
}
