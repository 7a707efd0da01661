package heap

// LessFunc reports whether a must be popped before b.
type LessFunc[T any] func(a, b T) bool

// Heap is a generic binary heap ordered by a LessFunc. Not safe to use concurrently.
type Heap[T any] struct {
	less  LessFunc[T]
	items []T
}

// New creates an empty heap with room for capacity items.
func New[T any](less LessFunc[T], capacity int) *Heap[T] {
	return &Heap[T]{
		items: make([]T, 0, capacity),
		less:  less,
	}
}

// From builds a heap from the given items in O(n). The slice is owned by
// the heap afterwards.
func From[T any](less LessFunc[T], items []T) *Heap[T] {
	h := &Heap[T]{
		items: items,
		less:  less,
	}

	for i := len(items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *Heap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.items[j], h.items[i]) {
			break
		}

		h.swap(i, j)

		j = i
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.items)

	for {
		left := 2*i + 1
		if left >= n {
			break
		}

		j := left
		if right := left + 1; right < n && h.less(h.items[right], h.items[left]) {
			j = right
		}

		if !h.less(h.items[j], h.items[i]) {
			break
		}

		h.swap(i, j)

		i = j
	}
}

// Len returns current number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push adds new element to the heap in O(log n) time.
func (h *Heap[T]) Push(val T) {
	h.items = append(h.items, val)
	h.up(len(h.items) - 1)
}

// Pop returns and removes the top element. Panics if there are no elements.
func (h *Heap[T]) Pop() T {
	n := len(h.items) - 1
	if n < 0 {
		panic("no elements in the heap")
	}

	h.swap(0, n)
	item := h.items[n]
	h.items = h.items[:n]
	h.down(0)

	return item
}

// Peek returns the top element without removing it. Panics if the heap is empty.
func (h *Heap[T]) Peek() T {
	if len(h.items) == 0 {
		panic("no elements in the heap")
	}

	return h.items[0]
}

// ReplaceTop swaps the top element for val and restores the heap order. It is
// the cheaper equivalent of Pop followed by Push, used when merging runs.
func (h *Heap[T]) ReplaceTop(val T) {
	if len(h.items) == 0 {
		panic("no elements in the heap")
	}

	h.items[0] = val
	h.down(0)
}
