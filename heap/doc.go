/*
Package heap implements a binary heap ordered by a client-supplied comparator.

The heap is stored in a slice. The element at the front is the one which no
other element is less than, as decided by the comparator. Clone copies the
slice; heaps do not share storage.

Top and Bottom select the k last or first elements of a sequence by building a
heap over all of its elements, which is O(n + k·log n).

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package heap

import (
	"github.com/npillmayer/cow"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cow'
func tracer() tracing.Trace {
	return tracing.Select("cow")
}

func assert(condition bool, msg string) {
	cow.Assert(condition, "heap: "+msg)
}
