/*
Package bintree implements a binary tree with copy-on-write storage.

A Tree owns its nodes. Clone returns a second tree sharing the nodes; the first
mutation of either tree clones them privately (see package cow).

Nodes are addressed by NodeRef values. A NodeRef denotes a position in a tree
rather than a node: either an existing node, a virtual slot below an existing
node where no child exists yet, or the root slot of the tree. Reading the
value of a slot is a programming error, writing a value to a slot
materializes a node there:

	t := bintree.Leaf(1)
	t.Root().Left().SetValue(2)
	t.Root().Left().Left().SetValue(3)

A NodeRef remembers its path from the root and is resolved against the
tree's current storage on every use, so references derived before a clone
stay usable afterwards. Resolution is O(depth).

Traversal is recursive, so the depth of the call stack equals the height of
the tree. Degenerated trees of large height may exhaust the stack.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bintree

import (
	"github.com/npillmayer/cow"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cow'
func tracer() tracing.Trace {
	return tracing.Select("cow")
}

func assert(condition bool, msg string) {
	cow.Assert(condition, "bintree: "+msg)
}
