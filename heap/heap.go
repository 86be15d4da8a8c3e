package heap

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/cow"
)

// Less is a strict ordering of elements.
type Less[T any] func(a, b T) bool

// Heap is a binary heap. A Heap has to be created by New, NewOrdered or From;
// the zero Heap has no ordering and refuses insertions.
type Heap[T any] struct {
	less Less[T]
	data []T
}

// New creates an empty heap ordered by less.
func New[T any](less Less[T]) *Heap[T] {
	assert(less != nil, "heap needs a comparator")
	return &Heap[T]{less: less}
}

// NewOrdered creates an empty heap of ordered elements, with the smallest
// element at the front.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(cmp.Less[T])
}

// From creates a heap ordered by less holding elems. It takes over elems as
// its storage and establishes heap order bottom-up in O(n).
func From[T any](less Less[T], elems ...T) *Heap[T] {
	h := New(less)
	h.data = elems
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	h.verify()
	return h
}

// Len returns the number of elements in h.
func (h *Heap[T]) Len() int {
	if h == nil {
		return 0
	}
	return len(h.data)
}

// IsEmpty reports whether h has no elements.
func (h *Heap[T]) IsEmpty() bool {
	return h.Len() == 0
}

// Peek returns the front element of h without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Push inserts v into h. O(log n).
func (h *Heap[T]) Push(v T) {
	assert(h.less != nil, "heap needs a comparator")
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
	h.verify()
}

// Pop removes and returns the front element of h. It returns false if h is
// empty. O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if h.IsEmpty() {
		return zero, false
	}
	assert(h.less != nil, "heap needs a comparator")
	front := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data[last] = zero
	h.data = h.data[:last]
	h.down(0)
	h.verify()
	return front, true
}

// up moves the element at i towards the front while it is less than its
// parent.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// down moves the element at i away from the front while one of its children
// is less than it. The child swapped with is the lesser of both, so that it
// is in order with its sibling after the swap.
func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		right := left + 1
		var child int
		switch {
		case left >= n: // no children
			return
		case right >= n: // left child only
			child = left
		case h.less(h.data[right], h.data[left]):
			child = right
		default:
			child = left
		}
		if !h.less(h.data[child], h.data[i]) {
			return
		}
		h.data[i], h.data[child] = h.data[child], h.data[i]
		i = child
	}
}

// Clone returns a copy of h. Elements implementing cow.Copyable are copied
// deeply.
func (h *Heap[T]) Clone() *Heap[T] {
	c := &Heap[T]{less: h.less, data: make([]T, len(h.data))}
	for i, v := range h.data {
		c.data[i] = cow.CopyValue(v)
	}
	return c
}

// Slice returns the elements of h in storage order, which is heap order but
// not sorted order.
func (h *Heap[T]) Slice() []T {
	return append([]T(nil), h.data...)
}

// Check validates heap order: no element is less than its parent.
func (h *Heap[T]) Check() error {
	for i := 1; i < len(h.data); i++ {
		if parent := (i - 1) / 2; h.less(h.data[i], h.data[parent]) {
			return fmt.Errorf("%w: element at %d precedes its parent at %d",
				cow.ErrBrokenStructure, i, parent)
		}
	}
	return nil
}

func (h *Heap[T]) verify() {
	if !cow.Debug().Strict {
		return
	}
	if err := h.Check(); err != nil {
		panic(cow.ContractError(err.Error()))
	}
}
