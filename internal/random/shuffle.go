package random

// Shuffle returns a new slice holding the items in uniformly random order.
// The input is never modified. Swaps run from the last index down to 1, each
// against a uniformly drawn index in [0, i].
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := Index(src, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PickOne returns one item chosen uniformly at random.
// The boolean is false when items is empty.
func PickOne[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[Index(src, len(items))], true
}
