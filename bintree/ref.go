package bintree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/cow"
)

type refKind int8

const (
	existingNode refKind = iota
	virtualSlot
	rootSlot
)

// NodeRef is a reference to a position within a tree: an existing node, a
// virtual slot below an existing node, or the root slot.
//
// The root slot stands for the tree itself. It is the parent of the root node
// and the position returned by Root for an empty tree. Writing to it replaces
// the root.
type NodeRef[T any] struct {
	tree    *Tree[T]
	path    []Side
	above   bool         // the root slot, even if a root exists
	storage cow.Identity // storage the ref has been derived from
}

// position is a NodeRef resolved against the current storage of its tree.
type position[T any] struct {
	kind   refKind
	node   *node[T] // for existingNode
	parent *node[T] // for virtualSlot
	side   Side     // for virtualSlot
}

func (r NodeRef[T]) resolve() position[T] {
	assert(r.tree != nil, "use of zero node reference")
	if id := r.tree.root.Identity(); id != r.storage && cow.Debug().Trace {
		tracer().Debugf("bintree: relocating node reference %v from storage %d to %d", r, r.storage, id)
	}
	if r.above {
		return position[T]{kind: rootSlot}
	}
	n := r.tree.root.Get()
	if n == nil {
		assert(len(r.path) == 0, "stale node reference: tree has no node at path")
		return position[T]{kind: rootSlot}
	}
	for i, side := range r.path {
		c := n.child(side)
		if c == nil {
			assert(i == len(r.path)-1, "stale node reference: tree has no node at path")
			return position[T]{kind: virtualSlot, parent: n, side: side}
		}
		n = c
	}
	return position[T]{kind: existingNode, node: n}
}

// existing resolves r and asserts that it denotes an existing node.
func (r NodeRef[T]) existing(msg string) *node[T] {
	pos := r.resolve()
	assert(pos.kind == existingNode, msg)
	return pos.node
}

func (r NodeRef[T]) derive(side Side) NodeRef[T] {
	path := make([]Side, len(r.path), len(r.path)+1)
	copy(path, r.path)
	return NodeRef[T]{tree: r.tree, path: append(path, side), storage: r.tree.root.Identity()}
}

func (r NodeRef[T]) String() string {
	if r.above {
		return "NodeRef<root slot>"
	}
	var b strings.Builder
	b.WriteString("NodeRef</")
	for i, side := range r.path {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(side.String())
	}
	b.WriteByte('>')
	return b.String()
}

// Left returns a reference to the left child of r, which is a virtual slot if
// there is no left child. r has to denote an existing node.
func (r NodeRef[T]) Left() NodeRef[T] {
	r.existing("cannot navigate below a virtual slot")
	return r.derive(LeftChild)
}

// Right returns a reference to the right child of r, which is a virtual slot
// if there is no right child. r has to denote an existing node.
func (r NodeRef[T]) Right() NodeRef[T] {
	r.existing("cannot navigate below a virtual slot")
	return r.derive(RightChild)
}

// At follows path downwards from r, one child per side, and returns the
// position reached. Every position passed on the way has to be an existing
// node.
func (r NodeRef[T]) At(path ...Side) NodeRef[T] {
	for _, side := range path {
		switch side {
		case LeftChild:
			r = r.Left()
		case RightChild:
			r = r.Right()
		default:
			assert(false, "path may only lead to left or right children")
		}
	}
	return r
}

// Parent returns a reference to the parent of r. The parent of the root node
// is the root slot; the root slot itself has no parent.
func (r NodeRef[T]) Parent() NodeRef[T] {
	assert(!r.above && r.resolve().kind != rootSlot, "root slot has no parent")
	if len(r.path) == 0 {
		return NodeRef[T]{tree: r.tree, above: true, storage: r.tree.root.Identity()}
	}
	return NodeRef[T]{
		tree:    r.tree,
		path:    r.path[: len(r.path)-1 : len(r.path)-1],
		storage: r.tree.root.Identity(),
	}
}

// Exists reports whether r denotes an existing node.
func (r NodeRef[T]) Exists() bool {
	return r.resolve().kind == existingNode
}

// IsRoot reports whether r denotes the root position of its tree, i.e. the
// root node or the root slot.
func (r NodeRef[T]) IsRoot() bool {
	return len(r.path) == 0
}

// Side returns the position of r relative to its parent.
func (r NodeRef[T]) Side() Side {
	if len(r.path) == 0 {
		return AtRoot
	}
	return r.path[len(r.path)-1]
}

// Value returns the value of the node r denotes. r must not denote a slot.
func (r NodeRef[T]) Value() T {
	return r.existing("reading the value of a virtual slot").value
}

// Lookup returns the value of the node r denotes, if it exists.
func (r NodeRef[T]) Lookup() (T, bool) {
	if pos := r.resolve(); pos.kind == existingNode {
		return pos.node.value, true
	}
	var zero T
	return zero, false
}

// SetValue writes v to the node r denotes. If r denotes a slot, a node holding
// v is created there.
func (r NodeRef[T]) SetValue(v T) {
	r.tree.ensureExclusive()
	switch pos := r.resolve(); pos.kind {
	case existingNode:
		pos.node.value = v
	case virtualSlot:
		pos.parent.attach(pos.side, &node[T]{value: v})
	case rootSlot:
		if root := r.tree.root.Get(); root != nil {
			root.value = v
		} else {
			r.tree.setRoot(&node[T]{value: v})
		}
	}
}

// Set replaces the subtree at r by the nodes of sub. sub is left empty; if it
// has been empty, the subtree at r is removed.
func (r NodeRef[T]) Set(sub *Tree[T]) {
	var n *node[T]
	if sub != nil {
		assert(sub != r.tree, "cannot graft a tree into itself")
		n = sub.take()
	}
	r.tree.ensureExclusive()
	switch pos := r.resolve(); pos.kind {
	case existingNode:
		if p := pos.node.parent; p == nil {
			r.tree.setRoot(n)
		} else if n == nil {
			p.detach(pos.node)
		} else {
			p.attach(pos.node.side(), n)
		}
	case virtualSlot:
		if n != nil {
			pos.parent.attach(pos.side, n)
		}
	case rootSlot:
		r.tree.setRoot(n)
	}
}

// SetLeft replaces the left subtree of r by the nodes of sub. sub is left
// empty.
func (r NodeRef[T]) SetLeft(sub *Tree[T]) {
	r.Left().Set(sub)
}

// SetRight replaces the right subtree of r by the nodes of sub. sub is left
// empty.
func (r NodeRef[T]) SetRight(sub *Tree[T]) {
	r.Right().Set(sub)
}

// Detach cuts the subtree at r out of its tree and returns it as a tree of
// its own. Detaching a slot returns an empty tree; detaching the root slot
// empties the tree.
func (r NodeRef[T]) Detach() *Tree[T] {
	sub := New[T]()
	if r.resolve().kind == virtualSlot {
		return sub
	}
	r.tree.ensureExclusive()
	var n *node[T]
	switch pos := r.resolve(); pos.kind {
	case existingNode:
		n = pos.node
		if n.parent == nil {
			r.tree.setRoot(nil)
		} else {
			n.parent.detach(n)
		}
	case rootSlot:
		n = r.tree.root.Get()
		r.tree.setRoot(nil)
	}
	if n != nil {
		sub.root.Set(n)
	}
	return sub
}

// Immutable returns a read-only reference to the node r denotes.
func (r NodeRef[T]) Immutable() ImmutableRef[T] {
	switch pos := r.resolve(); pos.kind {
	case existingNode:
		return ImmutableRef[T]{node: pos.node}
	case rootSlot:
		return r.tree.ImmutableRoot()
	}
	return ImmutableRef[T]{}
}

// IsChildOrEqual reports whether a denotes b or a position below b. It walks
// the parent chain of a and is O(depth). Both refs must belong to the same
// tree.
func IsChildOrEqual[T any](a, b NodeRef[T]) bool {
	assert(a.tree == b.tree, "node references belong to different trees")
	pa, pb := a.resolve(), b.resolve()
	switch {
	case pb.kind == rootSlot:
		return true
	case pa.kind == rootSlot:
		return false
	case pb.kind == virtualSlot:
		return pa.kind == virtualSlot && pa.parent == pb.parent && pa.side == pb.side
	}
	n := pa.node
	if pa.kind == virtualSlot {
		n = pa.parent
	}
	for ; n != nil; n = n.parent {
		if n == pb.node {
			return true
		}
	}
	return false
}

// ValueEqual reports whether a and b hold equal values. Two positions without
// a node are equal; a node never equals a slot.
func ValueEqual[T comparable](a, b NodeRef[T]) bool {
	va, oka := a.Lookup()
	vb, okb := b.Lookup()
	return oka == okb && va == vb
}

// ValueLess reports whether a holds a value less than b's. It is false if
// either position has no node.
func ValueLess[T cmp.Ordered](a, b NodeRef[T]) bool {
	va, oka := a.Lookup()
	vb, okb := b.Lookup()
	return oka && okb && cmp.Less(va, vb)
}

// ImmutableRef is a read-only reference to a node. The zero ImmutableRef
// denotes no node. An ImmutableRef follows the nodes it has been derived from
// and is meant for inspecting a tree which is not mutated meanwhile.
type ImmutableRef[T any] struct {
	node *node[T]
}

// Exists reports whether r denotes a node.
func (r ImmutableRef[T]) Exists() bool {
	return r.node != nil
}

// Left returns a reference to the left child of r.
func (r ImmutableRef[T]) Left() ImmutableRef[T] {
	if r.node == nil {
		return r
	}
	return ImmutableRef[T]{node: r.node.left}
}

// Right returns a reference to the right child of r.
func (r ImmutableRef[T]) Right() ImmutableRef[T] {
	if r.node == nil {
		return r
	}
	return ImmutableRef[T]{node: r.node.right}
}

// Parent returns a reference to the parent of r.
func (r ImmutableRef[T]) Parent() ImmutableRef[T] {
	if r.node == nil {
		return r
	}
	return ImmutableRef[T]{node: r.node.parent}
}

// Value returns the value of r's node. r must denote a node.
func (r ImmutableRef[T]) Value() T {
	assert(r.node != nil, "reading the value of a missing node")
	return r.node.value
}

// Lookup returns the value of r's node, if any.
func (r ImmutableRef[T]) Lookup() (T, bool) {
	if r.node == nil {
		var zero T
		return zero, false
	}
	return r.node.value, true
}

func (r ImmutableRef[T]) String() string {
	if r.node == nil {
		return "ImmutableRef<nil>"
	}
	return fmt.Sprintf("ImmutableRef<%v>", r.node.value)
}
