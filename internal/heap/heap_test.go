package heap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxpoletaev/sorter/internal/heap"
)

func less(a, b int) bool { return a < b }

func TestHeap_PushPop(t *testing.T) {
	h := heap.New(less, 0)

	h.Push(3)
	h.Push(1)
	h.Push(2)

	assert.Equal(t, 3, h.Len())

	assert.Equal(t, 1, h.Peek())
	assert.Equal(t, 1, h.Pop())
	assert.Equal(t, 2, h.Len())

	assert.Equal(t, 2, h.Pop())
	assert.Equal(t, 3, h.Pop())
	assert.Equal(t, 0, h.Len())
}

func TestHeap_From(t *testing.T) {
	h := heap.From(func(a, b int) bool { return a > b }, []int{4, 9, 1, 7, 7, 3})

	var got []int
	for h.Len() > 0 {
		got = append(got, h.Pop())
	}

	assert.Equal(t, []int{9, 7, 7, 4, 3, 1}, got)
}

func TestHeap_ReplaceTop(t *testing.T) {
	h := heap.From(less, []int{1, 5, 3})

	h.ReplaceTop(4)
	assert.Equal(t, 3, h.Peek())

	h.ReplaceTop(10)
	assert.Equal(t, 4, h.Pop())
	assert.Equal(t, 5, h.Pop())
	assert.Equal(t, 10, h.Pop())
}

func TestHeap_Empty(t *testing.T) {
	h := heap.New(less, 4)

	assert.PanicsWithValue(t, "no elements in the heap", func() {
		h.Pop()
	})

	assert.PanicsWithValue(t, "no elements in the heap", func() {
		h.Peek()
	})

	assert.PanicsWithValue(t, "no elements in the heap", func() {
		h.ReplaceTop(1)
	})
}
