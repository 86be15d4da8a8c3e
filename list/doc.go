/*
Package list implements a singly linked list with copy-on-write storage.

A List owns a chain of nodes. Clone returns a second list sharing the chain;
the first mutation of either list clones the chain privately (see package
cow). Appending and removing the first element are O(1), positional access
walks the chain.

Positions are expressed as Index values. An Index refers to a node of one
particular storage. Once a list's storage has been replaced by a clone, indices
derived earlier are stale and have to be re-derived with Relocate, which walks
both chains. Operations which clone as a side effect (SetAt, SwapAt,
ReplaceRange) relocate their index arguments themselves.

Using an index out of range, or against a list it was not derived from, is a
programming error and panics with a cow.ContractError.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package list

import (
	"github.com/npillmayer/cow"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cow'
func tracer() tracing.Trace {
	return tracing.Select("cow")
}

func assert(condition bool, msg string) {
	cow.Assert(condition, "list: "+msg)
}
