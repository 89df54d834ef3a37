package heap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/navijation/prioheap/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireHeapInvariant[T any](t *testing.T, h *PriorityHeap[T]) {
	t.Helper()
	for i := 1; i < len(h.items); i++ {
		require.Falsef(t, h.priority(h.items[parent(i)], h.items[i]),
			"item %d outranks its parent %d in %v", i, parent(i), h.items)
	}
}

func Test_indexArithmetic(t *testing.T) {
	for i, expected := range []int{1, 0, 0, 1, 1, 2, 2} {
		if i == 0 {
			continue
		}
		assert.Equalf(t, expected, parent(i), "parent(%d)", i)
	}

	for i := range 7 {
		assert.Equal(t, 2*i+1, left(i))
		assert.Equal(t, 2*i+2, right(i))
		assert.Equal(t, i, parent(left(i)))
		assert.Equal(t, i, parent(right(i)))
	}

	assert.False(t, isLeaf(0, 2))
	assert.False(t, isLeaf(1, 4))
	assert.True(t, isLeaf(1, 3))
	assert.True(t, isLeaf(2, 5))
	assert.False(t, isLeaf(2, 6))
	assert.True(t, isLeaf(0, 1))
}

func TestNewHeap(t *testing.T) {
	for _, tc := range []struct {
		name     string
		items    []int
		expected []int
	}{
		{name: "empty", items: nil, expected: nil},
		{name: "one", items: []int{4}, expected: []int{4}},
		{name: "three", items: []int{1, 2, 3}, expected: []int{3, 2, 1}},
		{name: "seven", items: []int{1, 2, 3, 4, 5, 6, 7}, expected: []int{7, 5, 6, 4, 2, 1, 3}},
		{name: "already a heap", items: []int{9, 4, 8, 1, 2}, expected: []int{9, 4, 8, 1, 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHeap(Less[int], tc.items...)
			assert.Equal(t, tc.expected, h.ToSlice())
			assert.Equal(t, len(tc.items), h.Size())
			requireHeapInvariant(t, h)
		})
	}
}

func TestNewHeap_doesNotAliasInput(t *testing.T) {
	input := []int{3, 1, 2}
	h := NewHeap(Less[int], input...)

	input[0] = 100
	assert.Equal(t, []int{3, 1, 2}, h.ToSlice())

	snapshot := h.ToSlice()
	snapshot[0] = -1
	top := h.Peek()
	assert.Equal(t, 3, top.Or(0))
}

func TestNewHeapFromSeq(t *testing.T) {
	h := NewHeapFromSeq(Less[string], util.SeqOf("banana", "cherry", "apple"))
	require.Equal(t, 3, h.Size())
	requireHeapInvariant(t, h)

	top, exists := h.Peek().Unpack()
	assert.True(t, exists)
	assert.Equal(t, "cherry", top)
}

func TestPriorityHeap_Insert(t *testing.T) {
	h := NewHeap(Less[int])
	assert.True(t, h.IsEmpty())

	for _, step := range []struct {
		value    int
		expected []int
	}{
		{value: 3, expected: []int{3}},
		{value: 5, expected: []int{5, 3}},
		{value: 4, expected: []int{5, 3, 4}},
		{value: 8, expected: []int{8, 5, 4, 3}},
		{value: 1, expected: []int{8, 5, 4, 3, 1}},
	} {
		sizeBefore := h.Size()
		h.Insert(step.value)
		assert.Equal(t, sizeBefore+1, h.Size())
		assert.Equal(t, step.expected, h.ToSlice())
	}
	assert.False(t, h.IsEmpty())
}

func TestPriorityHeap_ExtractMax(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := NewHeap(Less[int])

		_, err := h.ExtractMax()
		assert.ErrorIs(t, err, ErrEmptyContainer)
		assert.Equal(t, 0, h.Size())

		top := h.Peek()
		assert.False(t, top.IsSome())
	})

	t.Run("repairs from the root", func(t *testing.T) {
		h := NewHeap(Less[int], 8, 5, 4, 3)

		value, err := h.ExtractMax()
		require.NoError(t, err)
		assert.Equal(t, 8, value)
		assert.Equal(t, []int{5, 3, 4}, h.ToSlice())
	})

	t.Run("until empty", func(t *testing.T) {
		h := NewHeap(Less[int], 2, 5, 1, 8, 4, 3, 9, 5)

		var extracted []int
		for !h.IsEmpty() {
			sizeBefore := h.Size()
			value, err := h.ExtractMax()
			require.NoError(t, err)
			assert.Equal(t, sizeBefore-1, h.Size())
			requireHeapInvariant(t, h)
			extracted = append(extracted, value)
		}
		assert.Equal(t, []int{9, 8, 5, 5, 4, 3, 2, 1}, extracted)

		_, err := h.ExtractMax()
		assert.ErrorIs(t, err, ErrEmptyContainer)
	})
}

func TestPriorityHeap_BoundedExtractMax(t *testing.T) {
	h := NewHeap(Less[int], 1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, []int{7, 5, 6, 4, 2, 1, 3}, h.ToSlice())

	assert.Equal(t, 7, h.BoundedExtractMax(7))
	assert.Equal(t, []int{6, 5, 3, 4, 2, 1, 7}, h.ToSlice())
	assert.Equal(t, 7, h.Size())

	assert.Equal(t, 6, h.BoundedExtractMax(6))
	assert.Equal(t, []int{5, 4, 3, 1, 2, 6, 7}, h.ToSlice())
}

func TestPriorityHeap_FixDown(t *testing.T) {
	h := NewHeap(Less[int], 5, 4, 3)
	h.items[0] = 1

	// items past the active region are left alone
	h.FixDown(0, 2)
	assert.Equal(t, []int{4, 1, 3}, h.ToSlice())

	h.items = []int{1, 4, 3}
	h.FixDown(0, 3)
	assert.Equal(t, []int{4, 1, 3}, h.ToSlice())
}

func TestPriorityHeap_customPriority(t *testing.T) {
	type task struct {
		name     string
		priority int
	}

	h := NewHeap(func(a, b task) bool { return a.priority < b.priority },
		task{"write", 2},
		task{"review", 7},
		task{"deploy", 5},
	)
	h.Insert(task{"page", 10})

	var names []string
	for item := range h.Drain() {
		names = append(names, item.name)
	}
	assert.Equal(t, []string{"page", "review", "deploy", "write"}, names)
	assert.True(t, h.IsEmpty())
}

func TestPriorityHeap_Drain(t *testing.T) {
	h := NewHeap(Greater[int], 5, 1, 4)
	assert.Equal(t, []int{1, 4, 5}, slices.Collect(h.Drain()))

	h = NewHeap(Greater[int], 5, 1, 4)
	first, exists := util.SeqAt(h.Drain(), 0)
	assert.True(t, exists)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, h.Size())
	requireHeapInvariant(t, h)
}

func TestPriorityHeap_All(t *testing.T) {
	h := NewHeap(Less[int], 1, 2, 3)
	assert.Equal(t, h.ToSlice(), slices.Collect(h.All()))
	assert.Equal(t, 3, h.Size())
}

func TestPriorityHeap_randomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := NewHeap(Less[int])
	var model []int

	for range 2000 {
		if len(model) == 0 || rng.Intn(3) > 0 {
			value := rng.Intn(100)
			h.Insert(value)
			model = append(model, value)
		} else {
			value, err := h.ExtractMax()
			require.NoError(t, err)

			expected := slices.Max(model)
			require.Equal(t, expected, value)
			model = slices.Delete(model, slices.Index(model, expected), slices.Index(model, expected)+1)
		}

		require.Equal(t, len(model), h.Size())
		requireHeapInvariant(t, h)
	}
}
