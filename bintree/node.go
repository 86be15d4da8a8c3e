package bintree

import "github.com/npillmayer/cow"

// Side denotes the position of a node relative to its parent.
type Side int8

const (
	AtRoot     Side = iota // node has no parent
	LeftChild              // node is the left child of its parent
	RightChild             // node is the right child of its parent
)

func (s Side) String() string {
	switch s {
	case LeftChild:
		return "left"
	case RightChild:
		return "right"
	}
	return "root"
}

type node[T any] struct {
	value       T
	parent      *node[T] // non-owning
	left, right *node[T]
}

var _ cow.Cloner[*node[int], struct{}] = (*node[int])(nil)

// CloneWith copies the subtree rooted at n. Parent links of the copy point
// into the copy; the copy of n has no parent.
func (n *node[T]) CloneWith(ctx *struct{}) *node[T] {
	if n == nil {
		return nil
	}
	c := &node[T]{value: cow.CopyValue(n.value)}
	if c.left = n.left.CloneWith(ctx); c.left != nil {
		c.left.parent = c
	}
	if c.right = n.right.CloneWith(ctx); c.right != nil {
		c.right.parent = c
	}
	return c
}

func (n *node[T]) child(side Side) *node[T] {
	if side == LeftChild {
		return n.left
	}
	return n.right
}

func (n *node[T]) side() Side {
	switch {
	case n.parent == nil:
		return AtRoot
	case n.parent.left == n:
		return LeftChild
	}
	return RightChild
}

// attach links child below n, replacing any existing child at side. child is
// detached from its current parent first.
func (n *node[T]) attach(side Side, child *node[T]) {
	if child.parent != nil {
		child.parent.detach(child)
	}
	if old := n.child(side); old != nil {
		old.parent = nil
	}
	if side == LeftChild {
		n.left = child
	} else {
		n.right = child
	}
	child.parent = n
}

func (n *node[T]) detach(child *node[T]) {
	assert(child.parent == n, "detaching node which is not a child")
	switch child {
	case n.left:
		n.left = nil
	case n.right:
		n.right = nil
	}
	child.parent = nil
}

func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

func (n *node[T]) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.count() + n.right.count()
}
