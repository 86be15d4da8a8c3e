package bintree

import (
	"fmt"

	"github.com/npillmayer/cow"
)

// Check validates the structural invariants of t: the root has no parent,
// every child links back to its parent and no node is reachable twice.
func (t *Tree[T]) Check() error {
	if t.IsEmpty() {
		return nil
	}
	root := t.root.Get()
	if root.parent != nil {
		return fmt.Errorf("%w: root node has a parent", cow.ErrBrokenStructure)
	}
	seen := make(map[*node[T]]bool)
	var err error
	walk(root, PreOrder, func(n *node[T]) bool {
		if seen[n] {
			err = fmt.Errorf("%w: node %v reachable twice", cow.ErrBrokenStructure, n.value)
			return false
		}
		seen[n] = true
		for _, c := range []*node[T]{n.left, n.right} {
			if c != nil && c.parent != n {
				err = fmt.Errorf("%w: child %v of node %v has wrong parent link",
					cow.ErrBrokenStructure, c.value, n.value)
				return false
			}
		}
		if n.left != nil && n.left == n.right {
			err = fmt.Errorf("%w: node %v has the same left and right child", cow.ErrBrokenStructure, n.value)
			return false
		}
		return true
	})
	return err
}

// Equal reports whether a and b have the same shape and hold equal values at
// equal positions. Storage identity is irrelevant.
func Equal[T comparable](a, b *Tree[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, using eq to compare values.
func EqualFunc[T, U any](a *Tree[T], b *Tree[U], eq func(T, U) bool) bool {
	var x *node[T]
	var y *node[U]
	if !a.IsEmpty() {
		x = a.root.Get()
	}
	if !b.IsEmpty() {
		y = b.root.Get()
	}
	return equalNodes(x, y, eq)
}

func equalNodes[T, U any](x *node[T], y *node[U], eq func(T, U) bool) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return eq(x.value, y.value) &&
		equalNodes(x.left, y.left, eq) &&
		equalNodes(x.right, y.right, eq)
}
