package heap

import (
	"iter"
	"slices"

	"github.com/navijation/prioheap/util"
)

// PriorityHeap is a binary max-heap embedded in a slice. The priority function
// reports whether a has strictly lower priority than b, so the root always holds
// an element that no other element outranks.
//
// priority must be a strict weak ordering. Any other predicate leaves the heap
// in an unspecified order.
type PriorityHeap[T any] struct {
	priority func(a, b T) bool
	items    []T
}

// NewHeap builds a heap over a copy of items in O(n).
func NewHeap[T any](priority func(a, b T) bool, items ...T) *PriorityHeap[T] {
	return newHeapOver(priority, slices.Clone(items))
}

func NewHeapFromSeq[T any](priority func(a, b T) bool, seq iter.Seq[T]) *PriorityHeap[T] {
	return newHeapOver(priority, slices.Collect(seq))
}

// newHeapOver takes ownership of items and heapifies it in place
func newHeapOver[T any](priority func(a, b T) bool, items []T) *PriorityHeap[T] {
	out := &PriorityHeap[T]{
		priority: priority,
		items:    items,
	}
	out.heapify()
	return out
}

func parent(i int) int {
	return (i - 1) / 2
}

func left(i int) int {
	return 2*i + 1
}

func right(i int) int {
	return 2*i + 2
}

func isLeaf(i, n int) bool {
	return left(i) >= n
}

func (me *PriorityHeap[T]) heapify() {
	n := len(me.items)
	if n < 2 {
		return
	}
	for i := parent(n - 1); i >= 0; i-- {
		me.FixDown(i, n)
	}
}

func (me *PriorityHeap[T]) swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

func (me *PriorityHeap[T]) fixUp(i int) {
	for i > 0 && me.priority(me.items[parent(i)], me.items[i]) {
		me.swap(parent(i), i)
		i = parent(i)
	}
}

// FixDown moves the element at i toward the leaves, considering only the active
// region [0, n).
func (me *PriorityHeap[T]) FixDown(i, n int) {
	for !isLeaf(i, n) {
		j := left(i)
		if right(i) < n && me.priority(me.items[j], me.items[right(i)]) {
			j = right(i)
		}
		if !me.priority(me.items[i], me.items[j]) {
			return
		}
		me.swap(i, j)
		i = j
	}
}

func (me *PriorityHeap[T]) Size() int {
	return len(me.items)
}

func (me *PriorityHeap[T]) IsEmpty() bool {
	return len(me.items) == 0
}

func (me *PriorityHeap[T]) Peek() util.Optional[T] {
	if me.IsEmpty() {
		return util.None[T]()
	}
	return util.Some(me.items[0])
}

func (me *PriorityHeap[T]) Insert(value T) {
	me.items = append(me.items, value)
	me.fixUp(len(me.items) - 1)
}

// ExtractMax removes and returns the root. It returns ErrEmptyContainer and leaves
// the heap untouched when there is nothing to extract.
func (me *PriorityHeap[T]) ExtractMax() (out T, _ error) {
	if me.IsEmpty() {
		return out, ErrEmptyContainer
	}

	last := len(me.items) - 1
	out = me.items[0]
	me.items[0] = me.items[last]

	// clear the vacated slot so the backing array doesn't pin the value
	var zero T
	me.items[last] = zero
	me.items = me.items[:last]

	me.FixDown(0, last)
	return out, nil
}

// BoundedExtractMax treats items[0:n) as the heap and everything past it as
// already finalized. The root is swapped into position n-1 and the remaining
// region [0, n-1) is repaired. The backing slice keeps its length.
//
// n must be in [1, Size()].
func (me *PriorityHeap[T]) BoundedExtractMax(n int) T {
	out := me.items[0]
	me.swap(0, n-1)
	me.FixDown(0, n-1)
	return out
}

// ToSlice returns a copy of the backing slice in heap order.
func (me *PriorityHeap[T]) ToSlice() []T {
	return slices.Clone(me.items)
}

// All yields the elements in heap order without modifying the heap.
func (me *PriorityHeap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range me.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Drain extracts elements in priority order until the heap is empty or the
// consumer stops.
func (me *PriorityHeap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !me.IsEmpty() {
			item, _ := me.ExtractMax()
			if !yield(item) {
				return
			}
		}
	}
}
