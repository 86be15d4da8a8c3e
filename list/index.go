package list

import (
	"fmt"
	"iter"

	"github.com/npillmayer/cow"
)

// Index denotes a position within the storage of a list: either an element or
// the end position behind the last element.
//
// Indices carry no offset. Ordering two indices requires walking from one to
// the other.
type Index[T any] struct {
	lineage uint64
	storage cow.Identity
	head    *node[T] // head of the chain the index was derived from
	cur     *node[T] // nil for the end position
	prev    *node[T]
}

// IsEnd reports whether i is an end position.
func (i Index[T]) IsEnd() bool {
	return i.cur == nil
}

// Equal reports whether i and j denote the same position. Both indices must be
// derived from the same storage.
func (i Index[T]) Equal(j Index[T]) bool {
	assert(i.lineage == j.lineage && i.storage == j.storage,
		"comparing indices which do not belong to the same list storage")
	return i.cur == j.cur
}

func (i Index[T]) String() string {
	if i.cur == nil {
		return fmt.Sprintf("Index<%d:end>", i.storage)
	}
	return fmt.Sprintf("Index<%d:%v>", i.storage, i.cur.value)
}

func (l *List[T]) index(cur, prev *node[T]) Index[T] {
	return Index[T]{
		lineage: l.head.Lineage(),
		storage: l.head.Identity(),
		head:    l.head.Get(),
		cur:     cur,
		prev:    prev,
	}
}

// Start returns the position of the first element, or the end position if l
// is empty.
func (l *List[T]) Start() Index[T] {
	return l.index(l.head.Get(), nil)
}

// End returns the position behind the last element.
func (l *List[T]) End() Index[T] {
	return l.index(nil, l.tail)
}

// checked asserts that i has been derived from l's current storage.
func (l *List[T]) checked(i Index[T]) Index[T] {
	assert(i.lineage == l.head.Lineage(), "index does not belong to this list")
	assert(i.storage == l.head.Identity(), "stale index: list storage has been cloned, relocate the index first")
	return i
}

// After returns the position following i. i must not be the end position.
func (l *List[T]) After(i Index[T]) Index[T] {
	i = l.checked(i)
	assert(i.cur != nil, "index out of range")
	return Index[T]{
		lineage: i.lineage,
		storage: i.storage,
		head:    i.head,
		cur:     i.cur.next,
		prev:    i.cur,
	}
}

// IndexAt returns the position offset elements after the start. offset may be
// equal to l.Len(), denoting the end position.
func (l *List[T]) IndexAt(offset int) Index[T] {
	assert(offset >= 0 && offset <= l.size, "index out of range")
	var prev *node[T]
	cur := l.head.Get()
	for ; offset > 0; offset-- {
		prev, cur = cur, cur.next
	}
	return l.index(cur, prev)
}

// At returns the element at position i.
func (l *List[T]) At(i Index[T]) T {
	i = l.checked(i)
	assert(i.cur != nil, "index out of range")
	return i.cur.value
}

// SetAt replaces the element at position i with v.
//
// Ownership of the storage is established before anything is written: if l
// shares its storage, l first clones it and v is written to the clone only.
// SetAt returns the position of v, which is valid for l's current storage.
func (l *List[T]) SetAt(i Index[T], v T) Index[T] {
	i = l.checked(i)
	assert(i.cur != nil, "index out of range")
	if from := l.head.Get(); l.ensureExclusive() {
		i = l.relocate(i, from)
	}
	i.cur.value = v
	l.verify()
	return i
}

// Relocate returns the position within l's current storage corresponding to
// i. i must have been derived from l, or from a list sharing l's lineage,
// before storage was cloned; the storage i was derived from must not have
// been mutated since. Relocation walks the chain and is O(n).
func (l *List[T]) Relocate(i Index[T]) Index[T] {
	assert(i.lineage == l.head.Lineage(), "index does not belong to this list")
	if i.storage == l.head.Identity() {
		return i
	}
	return l.relocate(i, i.head)
}

// relocate maps i to l's current chain by walking the chain starting at from,
// which has to contain i, and l's chain in parallel.
func (l *List[T]) relocate(i Index[T], from *node[T]) Index[T] {
	if i.cur == nil {
		return l.End()
	}
	if cow.Debug().Trace {
		tracer().Infof("list: relocating index %v after copy on write, O(n)", i)
	}
	var prev *node[T]
	old, cur := from, l.head.Get()
	for old != i.cur {
		assert(old != nil && cur != nil, "cannot relocate index: chains have diverged")
		old = old.next
		prev, cur = cur, cur.next
	}
	assert(cur != nil, "cannot relocate index: chains have diverged")
	return l.index(cur, prev)
}

// predecessor returns the node preceding i.cur in l's chain. The predecessor
// recorded in i is trusted only if it still links to i.cur; otherwise the
// chain is walked from the start.
func (l *List[T]) predecessor(i Index[T]) *node[T] {
	if i.prev != nil && i.prev.next == i.cur {
		return i.prev
	}
	var prev *node[T]
	for n := l.head.Get(); n != i.cur; n = n.next {
		assert(n != nil, "index does not denote a position of this list")
		prev = n
	}
	return prev
}

// Less reports whether position i comes before position j. It walks from i
// towards j and is O(distance).
func (l *List[T]) Less(i, j Index[T]) bool {
	i, j = l.checked(i), l.checked(j)
	if i.cur == nil || i.cur == j.cur {
		return false
	}
	if j.cur == nil {
		return true
	}
	for n := i.cur.next; n != nil; n = n.next {
		if n == j.cur {
			return true
		}
	}
	return false
}

// Distance returns the number of elements in range [i, j). i must not come
// after j.
func (l *List[T]) Distance(i, j Index[T]) int {
	i, j = l.checked(i), l.checked(j)
	d := 0
	for n := i.cur; n != j.cur; n = n.next {
		assert(n != nil, "range bounds out of order")
		d++
	}
	return d
}

// Indices returns an iterator over the positions and elements of l, front to
// back.
func (l *List[T]) Indices() iter.Seq2[Index[T], T] {
	return func(yield func(Index[T], T) bool) {
		if l == nil {
			return
		}
		var prev *node[T]
		for n := l.head.Get(); n != nil; prev, n = n, n.next {
			if !yield(l.index(n, prev), n.value) {
				return
			}
		}
	}
}
