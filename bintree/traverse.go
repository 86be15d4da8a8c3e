package bintree

import "iter"

// Order is the order in which a traversal visits nodes.
type Order int8

const (
	PreOrder  Order = iota // node, left subtree, right subtree
	InOrder                // left subtree, node, right subtree
	PostOrder              // left subtree, right subtree, node
)

// Traverse calls visit for the value of every node of t, in the given order.
func (t *Tree[T]) Traverse(order Order, visit func(T)) {
	if t.IsEmpty() {
		return
	}
	walk(t.root.Get(), order, func(n *node[T]) bool {
		visit(n.value)
		return true
	})
}

// All returns an iterator over the values of t in the given order.
func (t *Tree[T]) All(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		walk(t.root.Get(), order, func(n *node[T]) bool {
			return yield(n.value)
		})
	}
}

// walk visits the subtree rooted at n recursively. It stops as soon as visit
// returns false, and reports whether it ran to completion.
func walk[T any](n *node[T], order Order, visit func(*node[T]) bool) bool {
	if n == nil {
		return true
	}
	if order == PreOrder && !visit(n) {
		return false
	}
	if !walk(n.left, order, visit) {
		return false
	}
	if order == InOrder && !visit(n) {
		return false
	}
	if !walk(n.right, order, visit) {
		return false
	}
	return order != PostOrder || visit(n)
}
