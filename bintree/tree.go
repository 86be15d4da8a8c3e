package bintree

import "github.com/npillmayer/cow"

// Tree is a binary tree with copy-on-write storage.
//
// The zero Tree is an empty tree ready to use. Trees are handled by pointer;
// use Clone to create a copy.
type Tree[T any] struct {
	root cow.Ref[*node[T], struct{}]
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return tracked(&Tree[T]{})
}

// Leaf creates a tree consisting of a single node holding v.
func Leaf[T any](v T) *Tree[T] {
	return tracked(&Tree[T]{root: cow.NewRef[*node[T], struct{}](&node[T]{value: v})})
}

// tracked arranges for t's nodes to be released once t becomes unreachable.
func tracked[T any](t *Tree[T]) *Tree[T] {
	cow.ReleaseWhenUnreachable(t, &t.root)
	return t
}

// Clone returns a copy of t in O(1). The copy shares t's nodes until one of
// the trees is mutated. Nodes are released when the copy becomes
// unreachable, or with Release.
func (t *Tree[T]) Clone() *Tree[T] {
	return tracked(&Tree[T]{root: t.root.Share()})
}

// Release drops t's share of its nodes and leaves t empty.
func (t *Tree[T]) Release() {
	t.root.Release()
}

func (t *Tree[T]) ensureExclusive() {
	if t.root.Get() == nil {
		if !t.root.IsExclusive() {
			t.root.Release()
		}
		return
	}
	cow.EnsureExclusive(&t.root, nil)
}

// take removes all nodes from t and hands them to the caller.
func (t *Tree[T]) take() *node[T] {
	t.ensureExclusive()
	n := t.root.Get()
	t.root.Release()
	return n
}

// setRoot installs n as the root node. t must be exclusive.
func (t *Tree[T]) setRoot(n *node[T]) {
	if n != nil && n.parent != nil {
		n.parent.detach(n)
	}
	if old := t.root.Get(); old != nil && old != n {
		old.parent = nil
	}
	t.root.Set(n)
}

// Root returns a reference to the root node, or to the root slot if t is
// empty.
func (t *Tree[T]) Root() NodeRef[T] {
	return NodeRef[T]{tree: t, storage: t.root.Identity()}
}

// SetRoot replaces all nodes of t by the nodes of sub. sub is left empty.
func (t *Tree[T]) SetRoot(sub *Tree[T]) {
	t.Root().Set(sub)
}

// ImmutableRoot returns a read-only reference to the root node.
func (t *Tree[T]) ImmutableRoot() ImmutableRef[T] {
	return ImmutableRef[T]{node: t.root.Get()}
}

// IsEmpty reports whether t has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root.Get() == nil
}

// Len returns the number of nodes in t. O(n).
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.Get().count()
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. O(n).
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.Get().height()
}

// Copies returns the number of copy-on-write clones performed by t and all
// trees sharing its lineage. It is meant for tests.
func (t *Tree[T]) Copies() int {
	return t.root.Copies()
}
