/*
Package cow provides the ownership protocol shared by the copy-on-write data
structures of this module.

# Copy-on-write

A copy-on-write (COW) structure shares its backing storage with every copy
made from it, until one of the copies is mutated. The mutating copy then
privately clones the storage and proceeds on the clone, leaving all other
copies untouched. Copies are therefore cheap (O(1)), and the price of copying
is paid only by copies which actually diverge.

Go has no hook into assignment, and no automatic test for "is this the only
reference to the pointee". This package makes both explicit: a Ref is a
reference-counted owning handle to a storage cell. Ref.Share creates a second
owning handle to the same cell, and EnsureExclusive clones the pointee of a
handle whose cell is shared, before the caller goes on to mutate it:

	var head cow.Ref[*node, *node]
	…
	other := head.Share()             // two owners, one storage
	cow.EnsureExclusive(&head, done)  // head now owns a private clone

The pointee implements Cloner. Cloning threads a context value through the
clone, allowing the clone to report auxiliary results (for example the last
node of a cloned chain) without a second traversal.

# Diagnostics

Every handle belongs to a lineage: all handles derived from one original by
sharing, including the ones which diverged later on. A lineage counts the
clones performed within it. Tests use the counter to assert that a divergence
clones exactly once. Debug switches are read from environment variable
COW_DEBUG (see Config), and clone events may be observed through Subscribe.

# Concurrency

The ownership test and the subsequent clone-or-mutate decision are not
synchronized. Structures built on this package must not be mutated
concurrently, even through different copies sharing storage.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package cow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cow'
func tracer() tracing.Trace {
	return tracing.Select("cow")
}
