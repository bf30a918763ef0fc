package demo

import (
	"github.com/amp-labs/multiview/animal"
	"github.com/amp-labs/multiview/multiview"
	"github.com/amp-labs/multiview/sortable"
)

// Report is one container rendered in a list of orders.
type Report struct {
	Label    string       `json:"label"    yaml:"label"`
	Elements []string     `json:"elements" yaml:"elements"`
	Views    []ViewReport `json:"views"    yaml:"views"`
}

// ViewReport is a single traversal of a container.
type ViewReport struct {
	Order    multiview.Order `json:"order"    yaml:"order"`
	Elements []string        `json:"elements" yaml:"elements"`
}

// BuildReport renders c in each of orders. Elements are recorded with their
// String form so containers of different element types share one shape.
func BuildReport[T multiview.Element[T]](label string, c *multiview.Container[T], orders []multiview.Order) Report {
	report := Report{
		Label:    label,
		Elements: render(c.Collect(multiview.Forward)),
		Views:    make([]ViewReport, 0, len(orders)),
	}

	for _, order := range orders {
		report.Views = append(report.Views, ViewReport{
			Order:    order,
			Elements: render(c.Collect(order)),
		})
	}

	return report
}

func render[T multiview.Element[T]](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}

	return out
}

// SampleReports builds the demonstration containers: integers, characters,
// strings, naturally ordered strings, unsigned sizes and animals.
func SampleReports(orders []multiview.Order) []Report {
	return []Report{
		BuildReport("Int", multiview.New[sortable.Int](9, 5, 7, 3, 1), orders),
		BuildReport("Char", multiview.New[sortable.Byte]('d', 'a', 'c', 'b'), orders),
		BuildReport("String", multiview.New[sortable.String]("banana", "apple", "kiwi", "pear"), orders),
		BuildReport("Natural", multiview.New[sortable.NaturalString]("track10", "track2", "track1", "track21"), orders),
		BuildReport("Size", multiview.New[sortable.Uint](50, 10, 30, 20), orders),
		BuildReport("Animal", multiview.New(
			animal.New("Cat", 5),
			animal.New("Dog", 3),
			animal.New("Bird", 2),
			animal.New("Horse", 7),
		), orders),
	}
}
