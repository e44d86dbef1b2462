package sliceutil

// Move returns a copy of items
// with the element at index from relocated to index to.
// All other elements keep their relative order.
//
// Both indexes must be in range.
func Move[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)

	v := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = v
	return out
}
