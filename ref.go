package cow

import (
	"runtime"
	"sync/atomic"
)

// Cloner is implemented by the root of an owned pointer graph.
//
// CloneWith returns a structurally identical copy of the graph which shares no
// storage with the receiver. Back-references within the graph must be re-wired
// to the clone. ctx points to a zero value of C on entry and may be used by the
// clone to report auxiliary results to the caller of EnsureExclusive.
type Cloner[P any, C any] interface {
	CloneWith(ctx *C) P
}

// Copyable is implemented by element values which need a deep copy whenever
// the structure holding them clones its storage.
type Copyable[T any] interface {
	Copy() T
}

// CopyValue returns v.Copy() if v is Copyable, v otherwise.
func CopyValue[T any](v T) T {
	if c, ok := any(v).(Copyable[T]); ok {
		return c.Copy()
	}
	return v
}

// Identity identifies a storage cell. The zero Identity denotes "no storage".
type Identity uint64

var (
	identities atomic.Uint64
	lineages   atomic.Uint64
)

func newIdentity() Identity {
	return Identity(identities.Add(1))
}

// cell is the unit of shared storage. refs is decremented by cleanups of
// unreachable owners, which run on a goroutine of their own.
type cell[P any] struct {
	pointee P
	refs    atomic.Int64
	id      Identity
}

func newCell[P any](p P) *cell[P] {
	c := &cell[P]{pointee: p, id: newIdentity()}
	c.refs.Store(1)
	return c
}

// owner is the ownership record of one handle. Handles are embedded in the
// structures using them, while owners live apart, so that a cleanup may
// release storage without keeping the structure reachable.
type owner[P any] struct {
	c *cell[P]
}

func (o *owner[P]) release() {
	if o.c == nil {
		return
	}
	o.c.refs.Add(-1)
	o.c = nil
}

// lineage is shared between all handles derived from one original.
type lineage struct {
	id     uint64
	copies int
}

// Ref is an owning handle to a shared storage cell holding a pointee of type P.
//
// The zero Ref is an empty handle. A Ref must not be copied by assignment once
// it holds storage; use Share to create a second owner.
type Ref[P Cloner[P, C], C any] struct {
	o   *owner[P]
	lin *lineage
}

// NewRef creates a handle as the single owner of p.
func NewRef[P Cloner[P, C], C any](p P) Ref[P, C] {
	r := Ref[P, C]{}
	r.Set(p)
	return r
}

func (r *Ref[P, C]) lineage() *lineage {
	if r.lin == nil {
		r.lin = &lineage{id: lineages.Add(1)}
	}
	return r.lin
}

func (r *Ref[P, C]) owner() *owner[P] {
	if r.o == nil {
		r.o = &owner[P]{}
	}
	return r.o
}

func (r *Ref[P, C]) cell() *cell[P] {
	if r.o == nil {
		return nil
	}
	return r.o.c
}

// Share returns a second owning handle to r's storage. Both handles belong to
// the same lineage.
func (r *Ref[P, C]) Share() Ref[P, C] {
	lin := r.lineage()
	c := r.cell()
	if c != nil {
		c.refs.Add(1)
	}
	return Ref[P, C]{o: &owner[P]{c: c}, lin: lin}
}

// Release drops r's ownership of its storage. r becomes an empty handle of the
// same lineage.
func (r *Ref[P, C]) Release() {
	if r.o != nil {
		r.o.release()
	}
}

// ReleaseWhenUnreachable arranges for the storage owned by r to be released
// once holder has become unreachable. r has to be embedded in holder, which
// must have been allocated by new or a composite literal.
func ReleaseWhenUnreachable[H any, P Cloner[P, C], C any](holder *H, r *Ref[P, C]) {
	runtime.AddCleanup(holder, releaseOwner[P], r.owner())
}

func releaseOwner[P any](o *owner[P]) {
	if o.c != nil && Debug().Trace {
		tracer().Debugf("copy on write: owner of storage %d became unreachable", o.c.id)
	}
	o.release()
}

// IsExclusive reports whether r is the only live owner of its storage. Empty
// handles are exclusive.
func (r *Ref[P, C]) IsExclusive() bool {
	c := r.cell()
	return c == nil || c.refs.Load() == 1
}

// IsEmpty reports whether r holds no storage.
func (r *Ref[P, C]) IsEmpty() bool {
	return r.cell() == nil
}

// Get returns the pointee, or the zero P for an empty handle.
func (r *Ref[P, C]) Get() P {
	c := r.cell()
	if c == nil {
		var zero P
		return zero
	}
	return c.pointee
}

// Set replaces the pointee. An empty handle allocates fresh storage.
// Setting the pointee of shared storage is a contract violation: callers have
// to call EnsureExclusive first.
func (r *Ref[P, C]) Set(p P) {
	o := r.owner()
	if o.c == nil {
		r.lineage()
		o.c = newCell(p)
		return
	}
	Assert(o.c.refs.Load() == 1, "cow: attempt to replace the pointee of shared storage")
	o.c.pointee = p
}

// Identity returns the identity of r's storage, or 0 for an empty handle.
// The identity changes whenever r's storage is replaced by a clone.
func (r *Ref[P, C]) Identity() Identity {
	c := r.cell()
	if c == nil {
		return 0
	}
	return c.id
}

// Lineage returns the identifier of r's lineage.
func (r *Ref[P, C]) Lineage() uint64 {
	return r.lineage().id
}

// Copies returns the number of clones performed within r's lineage.
func (r *Ref[P, C]) Copies() int {
	if r.lin == nil {
		return 0
	}
	return r.lin.copies
}

// EnsureExclusive makes ref the single owner of its storage. If the storage is
// shared, the pointee is cloned, ref is re-seated on the clone and
// EnsureExclusive returns true. done, if non-nil, receives the clone context.
// If ref already is the single owner, or is empty, nothing is allocated and
// EnsureExclusive returns false.
func EnsureExclusive[P Cloner[P, C], C any](ref *Ref[P, C], done func(C)) bool {
	if ref.IsExclusive() {
		return false
	}
	var ctx C
	o := ref.o
	clone := o.c.pointee.CloneWith(&ctx)
	old := o.c.id
	o.c.refs.Add(-1)
	o.c = newCell(clone)
	lin := ref.lineage()
	lin.copies++
	if Debug().Trace {
		tracer().Debugf("copy on write: lineage %d cloned storage %d into %d (copy #%d)",
			lin.id, old, o.c.id, lin.copies)
	}
	if Debug().Events {
		publish(CloneEvent{Lineage: lin.id, From: old, To: o.c.id, Copies: lin.copies})
	}
	if done != nil {
		done(ctx)
	}
	return true
}
