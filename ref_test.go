package cow

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type link struct {
	value int
	next  *link
}

// CloneWith reports the last node of the clone through last.
func (l *link) CloneWith(last **link) *link {
	if l == nil {
		return nil
	}
	head := &link{value: l.value}
	*last = head
	for src, dst := l.next, head; src != nil; src = src.next {
		dst.next = &link{value: src.value}
		dst = dst.next
		*last = dst
	}
	return head
}

func makeChain(n int) *link {
	var head, tail *link
	for i := 0; i < n; i++ {
		l := &link{value: i}
		if head == nil {
			head = l
		} else {
			tail.next = l
		}
		tail = l
	}
	return head
}

func values(l *link) []int {
	var out []int
	for ; l != nil; l = l.next {
		out = append(out, l.value)
	}
	return out
}

func TestEmptyRefIsExclusive(t *testing.T) {
	var r Ref[*link, *link]
	if !r.IsExclusive() || !r.IsEmpty() {
		t.Fatalf("expected zero Ref to be empty and exclusive")
	}
	if r.Identity() != 0 {
		t.Fatalf("expected empty Ref to have identity 0, has %d", r.Identity())
	}
	if EnsureExclusive(&r, nil) {
		t.Fatalf("expected no clone for empty Ref")
	}
}

func TestEnsureExclusiveOnSingleOwner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow")
	defer teardown()
	//
	r := NewRef[*link, *link](makeChain(3))
	id := r.Identity()
	if EnsureExclusive(&r, nil) {
		t.Fatalf("single owner must not clone")
	}
	if r.Identity() != id || r.Copies() != 0 {
		t.Fatalf("storage changed for single owner: id %d→%d, copies=%d", id, r.Identity(), r.Copies())
	}
}

func TestEnsureExclusiveClonesSharedStorage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow")
	defer teardown()
	//
	r := NewRef[*link, *link](makeChain(4))
	other := r.Share()
	if r.IsExclusive() || other.IsExclusive() {
		t.Fatalf("expected shared storage after Share")
	}
	if r.Identity() != other.Identity() || r.Lineage() != other.Lineage() {
		t.Fatalf("shared handles must have same identity and lineage")
	}
	var last *link
	if !EnsureExclusive(&r, func(l *link) { last = l }) {
		t.Fatalf("expected clone of shared storage")
	}
	if r.Get() == other.Get() {
		t.Fatalf("clone shares head node with original")
	}
	if last == nil || last.value != 3 || last.next != nil {
		t.Fatalf("clone context did not report last node, got %v", last)
	}
	for a, b := r.Get(), other.Get(); a != nil; a, b = a.next, b.next {
		if a == b {
			t.Fatalf("clone shares node %d with original", a.value)
		}
	}
	if !r.IsExclusive() || !other.IsExclusive() {
		t.Fatalf("expected both handles to be exclusive after divergence")
	}
	if r.Identity() == other.Identity() {
		t.Fatalf("expected clone to have a fresh identity")
	}
	got := values(r.Get())
	if len(got) != 4 || got[0] != 0 || got[3] != 3 {
		t.Fatalf("unexpected clone contents %v", got)
	}
}

func TestCopiesCountedPerLineage(t *testing.T) {
	r := NewRef[*link, *link](makeChain(10))
	EnsureExclusive(&r, nil)
	if r.Copies() != 0 {
		t.Fatalf("expected 0 copies, have %d", r.Copies())
	}
	other := r.Share()
	if r.Copies() != 0 || other.Copies() != 0 {
		t.Fatalf("sharing must not copy")
	}
	EnsureExclusive(&r, nil)
	if r.Copies() != 1 || other.Copies() != 1 {
		t.Fatalf("expected 1 copy for both handles, have %d/%d", r.Copies(), other.Copies())
	}
	EnsureExclusive(&r, nil)
	EnsureExclusive(&other, nil)
	if r.Copies() != 1 || other.Copies() != 1 {
		t.Fatalf("expected still 1 copy after divergence, have %d/%d", r.Copies(), other.Copies())
	}
	unrelated := NewRef[*link, *link](makeChain(1))
	if unrelated.Lineage() == r.Lineage() || unrelated.Copies() != 0 {
		t.Fatalf("unrelated handle must have its own lineage")
	}
}

func TestReleaseMakesOtherOwnerExclusive(t *testing.T) {
	r := NewRef[*link, *link](makeChain(2))
	other := r.Share()
	other.Release()
	if !other.IsEmpty() {
		t.Fatalf("released handle should be empty")
	}
	if !r.IsExclusive() {
		t.Fatalf("remaining owner should be exclusive")
	}
	if EnsureExclusive(&r, nil) {
		t.Fatalf("no clone expected after release")
	}
}

func TestSetOnSharedStoragePanics(t *testing.T) {
	r := NewRef[*link, *link](makeChain(2))
	_ = r.Share()
	defer func() {
		p := recover()
		if _, ok := p.(ContractError); !ok {
			t.Fatalf("expected ContractError panic, got %v", p)
		}
	}()
	r.Set(nil)
}

type box struct{ v []int }

func (b box) Copy() box {
	return box{v: append([]int(nil), b.v...)}
}

func TestCopyValue(t *testing.T) {
	b := box{v: []int{1, 2}}
	c := CopyValue(b)
	c.v[0] = 9
	if b.v[0] != 1 {
		t.Fatalf("CopyValue did not deep-copy a Copyable value")
	}
	if CopyValue(7) != 7 {
		t.Fatalf("CopyValue changed a plain value")
	}
}
