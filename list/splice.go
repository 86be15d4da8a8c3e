package list

// ReplaceRange replaces the elements in range [lo, hi) with values. lo must
// not come after hi; both must be derived from l's current storage.
//
// Appending (lo at the end), prepending (hi at the start), replacing a prefix
// and replacing a suffix run in time proportional to the size of the range and
// of values. All other shapes need to relocate both bounds against a clone if
// l shares its storage, and are O(n) in that case.
func (l *List[T]) ReplaceRange(lo, hi Index[T], values ...T) {
	lo, hi = l.checked(lo), l.checked(hi)
	removed := l.Distance(lo, hi)
	if removed == 0 && len(values) == 0 {
		return
	}
	head := l.head.Get() // chain before a possible clone
	atStart := lo.cur == head
	atEnd := hi.cur == nil
	repl := build(values)
	switch {
	case removed == 0 && lo.cur == nil: // append
		l.ensureExclusive()
		l.appendChain(repl)
	case removed == 0 && atStart: // prepend
		l.ensureExclusive()
		rest := chain[T]{head: l.head.Get(), tail: l.tail}
		repl.concat(rest)
		l.head.Set(repl.head)
		l.tail = repl.tail
	case atStart: // replace prefix
		if l.ensureExclusive() {
			hi = l.relocate(hi, head)
		}
		rest := chain[T]{head: hi.cur}
		if hi.cur != nil {
			rest.tail = l.tail
		}
		repl.concat(rest)
		l.head.Set(repl.head)
		l.tail = repl.tail
	case atEnd: // replace suffix
		if l.ensureExclusive() {
			lo = l.relocate(lo, head)
		}
		l.tail = l.predecessor(lo)
		l.tail.next = nil
		l.appendChain(repl)
	default: // insert or replace in the interior
		if l.ensureExclusive() {
			tracer().Infof("list: interior splice on shared storage, relocating bounds")
			lo, hi = l.relocate(lo, head), l.relocate(hi, head)
		}
		prev, next := l.predecessor(lo), hi.cur
		if repl.head == nil {
			prev.next = next
		} else {
			prev.next = repl.head
			repl.tail.next = next
		}
	}
	l.size += len(values) - removed
	l.verify()
}

func (l *List[T]) appendChain(c chain[T]) {
	if c.head == nil {
		return
	}
	if l.tail == nil {
		l.head.Set(c.head)
	} else {
		l.tail.next = c.head
	}
	l.tail = c.tail
}

// InsertAt inserts values before position i.
func (l *List[T]) InsertAt(i Index[T], values ...T) {
	l.ReplaceRange(i, i, values...)
}

// RemoveRange removes the elements in range [lo, hi).
func (l *List[T]) RemoveRange(lo, hi Index[T]) {
	l.ReplaceRange(lo, hi)
}

// Partition reorders the elements of l such that all elements for which
// belongsInSecond returns false precede all elements for which it returns true.
// The relative order within each group is preserved. Nodes are re-linked, not
// re-allocated.
//
// Partition returns the position of the first element of the second group,
// or the end position if there is none.
func (l *List[T]) Partition(belongsInSecond func(T) bool) Index[T] {
	if l.IsEmpty() {
		return l.End()
	}
	l.ensureExclusive()
	var first, second chain[T]
	for n := l.head.Get(); n != nil; {
		next := n.next
		n.next = nil
		if belongsInSecond(n.value) {
			second.push(n)
		} else {
			first.push(n)
		}
		n = next
	}
	boundary, prev := second.head, first.tail
	first.concat(second)
	l.head.Set(first.head)
	l.tail = first.tail
	l.verify()
	return l.index(boundary, prev)
}

// SwapAt exchanges the elements at positions i and j. Nodes stay in place,
// only values are exchanged.
func (l *List[T]) SwapAt(i, j Index[T]) {
	i, j = l.checked(i), l.checked(j)
	assert(i.cur != nil && j.cur != nil, "index out of range")
	if i.cur == j.cur {
		return
	}
	if from := l.head.Get(); l.ensureExclusive() {
		i, j = l.relocate(i, from), l.relocate(j, from)
	}
	i.cur.value, j.cur.value = j.cur.value, i.cur.value
	l.verify()
}

// Equal reports whether a and b hold equal elements in the same order.
// Storage identity is irrelevant.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, using eq to compare elements.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.IsEmpty() {
		return true
	}
	x, y := a.head.Get(), b.head.Get()
	for x != nil && y != nil {
		if !eq(x.value, y.value) {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}
