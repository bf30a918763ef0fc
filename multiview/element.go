package multiview

import (
	"fmt"

	"github.com/amp-labs/multiview/sortable"
)

// Element is the capability bound for values stored in a Container: equality
// (used by Remove), a total order (used by every derived view) and a
// human-readable form (used by String).
type Element[T any] interface {
	sortable.Sortable[T]
	fmt.Stringer
}
