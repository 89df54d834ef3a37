package heap

import (
	"cmp"
	"slices"
)

// Less orders values ascending when passed to Heapsort.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Greater orders values descending when passed to Heapsort.
func Greater[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// Heapsort returns a sorted copy of items such that no element is followed by
// one of strictly higher priority. items itself is left unchanged.
//
// Time Complexity: O(n log n)
// Space Complexity: O(n)
func Heapsort[T any](items []T, priority func(a, b T) bool) []T {
	out := slices.Clone(items)
	HeapsortInPlace(out, priority)
	return out
}

// HeapsortInPlace sorts items directly, using the slice itself as the heap's
// backing array.
//
// Space Complexity: O(1)
func HeapsortInPlace[T any](items []T, priority func(a, b T) bool) {
	heap := newHeapOver(priority, items)
	for n := len(items); n > 1; n-- {
		heap.BoundedExtractMax(n)
	}
}
