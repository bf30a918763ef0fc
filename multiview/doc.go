// Package multiview provides Container, an insertion-ordered collection that can
// be traversed in six orders without ever reordering its storage:
//
//   - Forward: insertion order
//   - Reverse: insertion order, back to front
//   - Ascending: stably sorted, ties keep insertion order
//   - Descending: Ascending, back to front
//   - SideCross: smallest, largest, second smallest, second largest, …
//   - MiddleOut: the median, then alternately one step left and one step right
//
// Every view is an iter.Seq, so it can be ranged over directly:
//
//	c := multiview.New[sortable.Int](9, 5, 7, 3, 1)
//	for v := range c.SideCross() {
//	    fmt.Print(v, " ") // 1 9 3 7 5
//	}
//
// The derived orders (Ascending, Descending, SideCross, MiddleOut) are all
// projections of one canonical sorted form, a stable sort of the backing
// sequence. That form is cached and rebuilt after any mutation, so a view never
// reflects stale state.
//
// A Container is not safe for concurrent use, not even by concurrent readers,
// since opening a derived view may rebuild the sorted form. Mutating a container while
// ranging over one of its views is undefined behavior.
package multiview
