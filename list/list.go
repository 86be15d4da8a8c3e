package list

import (
	"iter"

	"github.com/npillmayer/cow"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// CloneWith copies the chain starting at n. The last node of the copy is
// reported through last.
func (n *node[T]) CloneWith(last **node[T]) *node[T] {
	if n == nil {
		return nil
	}
	head := &node[T]{value: cow.CopyValue(n.value)}
	dst := head
	for src := n.next; src != nil; src = src.next {
		dst.next = &node[T]{value: cow.CopyValue(src.value)}
		dst = dst.next
	}
	*last = dst
	return head
}

var _ cow.Cloner[*node[int], *node[int]] = (*node[int])(nil)

// chain is a loose run of nodes, used while re-linking.
type chain[T any] struct {
	head, tail *node[T]
}

func (c *chain[T]) push(n *node[T]) {
	if c.head == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
}

// concat links other after c. other must be terminated.
func (c *chain[T]) concat(other chain[T]) {
	if other.head == nil {
		return
	}
	if c.head == nil {
		*c = other
		return
	}
	c.tail.next = other.head
	c.tail = other.tail
}

func build[T any](values []T) chain[T] {
	var c chain[T]
	for _, v := range values {
		c.push(&node[T]{value: v})
	}
	return c
}

// List is a singly linked list with copy-on-write storage.
//
// The zero List is an empty list ready to use. Lists are handled by pointer;
// use Clone to create a copy. A List must not be copied by value.
type List[T any] struct {
	head cow.Ref[*node[T], *node[T]]
	tail *node[T] // non-owning, last node of the chain owned by head
	size int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return tracked(&List[T]{})
}

// tracked arranges for l's storage to be released once l becomes unreachable,
// so that lists still sharing it need not clone.
func tracked[T any](l *List[T]) *List[T] {
	cow.ReleaseWhenUnreachable(l, &l.head)
	return l
}

// Of creates a list holding values.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	l.AppendAll(values...)
	return l
}

// Collect creates a list from the values of seq.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.Append(v)
	}
	return l
}

// Clone returns a copy of l in O(1). The copy shares l's storage until one of
// them is mutated. Storage is released when the copy becomes unreachable, or
// with Release.
func (l *List[T]) Clone() *List[T] {
	return tracked(&List[T]{
		head: l.head.Share(),
		tail: l.tail,
		size: l.size,
	})
}

// Release drops l's share of its storage and leaves l empty. Lists sharing
// the storage with l will not have to clone it on their next mutation.
func (l *List[T]) Release() {
	l.head.Release()
	l.tail = nil
	l.size = 0
}

// ensureExclusive makes l the single owner of its chain, cloning the chain if
// it is shared. It reports whether a clone took place.
func (l *List[T]) ensureExclusive() bool {
	if l.head.Get() == nil {
		if !l.head.IsExclusive() {
			l.head.Release() // nothing to clone
		}
		return false
	}
	return cow.EnsureExclusive(&l.head, func(last *node[T]) {
		l.tail = last
	})
}

// verify runs the structural checker in strict debug mode.
func (l *List[T]) verify() {
	if !cow.Debug().Strict {
		return
	}
	if err := l.Check(); err != nil {
		panic(cow.ContractError(err.Error()))
	}
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head.Get() == nil
}

// First returns the first element of l, if any.
func (l *List[T]) First() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.head.Get().value, true
}

// Last returns the last element of l, if any.
func (l *List[T]) Last() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Append adds v at the end of l.
func (l *List[T]) Append(v T) {
	l.ensureExclusive()
	l.link(&node[T]{value: v})
	l.size++
	l.verify()
}

// AppendAll adds values at the end of l.
func (l *List[T]) AppendAll(values ...T) {
	if len(values) == 0 {
		return
	}
	l.ensureExclusive()
	for _, v := range values {
		l.link(&node[T]{value: v})
	}
	l.size += len(values)
	l.verify()
}

// Prepend inserts values at the front of l, preserving their order.
func (l *List[T]) Prepend(values ...T) {
	start := l.Start()
	l.ReplaceRange(start, start, values...)
}

func (l *List[T]) link(n *node[T]) {
	if l.tail == nil {
		l.head.Set(n)
	} else {
		l.tail.next = n
	}
	l.tail = n
}

// RemoveFirst removes and returns the first element of l. It returns false
// if l is empty.
func (l *List[T]) RemoveFirst() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	l.ensureExclusive()
	first := l.head.Get()
	l.head.Set(first.next)
	first.next = nil
	if l.head.Get() == nil {
		l.tail = nil
	}
	l.size--
	l.verify()
	return first.value, true
}

// All returns an iterator over the elements of l, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head.Get(); n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the elements of l in a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Copies returns the number of copy-on-write clones performed by l and all
// lists sharing its lineage (see cow.Ref.Copies). It is meant for tests.
func (l *List[T]) Copies() int {
	return l.head.Copies()
}
