package multiview

import "iter"

// ranks yields indexes in [0, n) in the sequence the given order visits them.
// For derived orders the indexes are ranks into the sorted form; for Forward
// and Reverse they are positions in the backing sequence.
func ranks(order Order, n int) iter.Seq[int] {
	switch order {
	case Forward, Ascending:
		return frontToBack(n)
	case Reverse, Descending:
		return backToFront(n)
	case SideCross:
		return sideCross(n)
	case MiddleOut:
		return middleOut(n)
	default:
		return func(func(int) bool) {}
	}
}

func frontToBack(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func backToFront(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := n - 1; i >= 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

// sideCross walks two cursors towards each other, taking from the left cursor
// first and alternating after every step.
func sideCross(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		left, right := 0, n-1
		fromLeft := true

		for left <= right {
			var next int

			if fromLeft {
				next = left
				left++
			} else {
				next = right
				right--
			}

			if !yield(next) {
				return
			}

			fromLeft = !fromLeft
		}
	}
}

// middleOut emits mid = (n-1)/2, then for each offset the left candidate
// before the right one, skipping whichever is out of range.
func middleOut(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if n == 0 {
			return
		}

		mid := (n - 1) / 2
		if !yield(mid) {
			return
		}

		for offset := 1; mid-offset >= 0 || mid+offset < n; offset++ {
			if mid-offset >= 0 && !yield(mid-offset) {
				return
			}

			if mid+offset < n && !yield(mid+offset) {
				return
			}
		}
	}
}
