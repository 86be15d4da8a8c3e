package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cow"
)

// Check validates the structural invariants of l: the chain starting at head
// is acyclic, holds exactly Len() nodes and terminates at the tail node.
//
// Check is meant for tests and for strict debug mode (see cow.Config).
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", cow.ErrBrokenStructure)
	}
	head := l.head.Get()
	if head == nil {
		if l.tail != nil {
			return fmt.Errorf("%w: empty list has a tail", cow.ErrBrokenStructure)
		}
		if l.size != 0 {
			return fmt.Errorf("%w: empty list has size %d", cow.ErrBrokenStructure, l.size)
		}
		return nil
	}
	if l.tail == nil {
		return fmt.Errorf("%w: non-empty list has no tail", cow.ErrBrokenStructure)
	}
	count := 1
	n := head
	for ; n.next != nil; n = n.next {
		if count >= l.size {
			return fmt.Errorf("%w: chain longer than size %d, or cyclic", cow.ErrBrokenStructure, l.size)
		}
		count++
	}
	if count != l.size {
		return fmt.Errorf("%w: chain has %d nodes, size is %d", cow.ErrBrokenStructure, count, l.size)
	}
	if n != l.tail {
		return fmt.Errorf("%w: chain does not terminate at tail", cow.ErrBrokenStructure)
	}
	return nil
}

// String returns the elements of l in the format of fmt's %v for slices.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range l.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
