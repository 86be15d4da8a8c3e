package queue

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeChunked(t *testing.T) *Chunked[int] {
	t.Helper()
	q := NewChunked[int]()
	if err := q.Check(); err != nil {
		t.Fatalf("new queue is broken: %v", err)
	}
	q.Enqueue(1)
	if q.Chunks() != 1 || q.Len() != 1 || q.IsEmpty() {
		t.Fatalf("expected 1 element in 1 chunk, have %d/%d", q.Len(), q.Chunks())
	}
	q.EnqueueAll(1, 2, 3, 4)
	if q.Chunks() != 2 || q.Len() != 5 {
		t.Fatalf("expected 5 elements in 2 chunks, have %d/%d", q.Len(), q.Chunks())
	}
	q.EnqueueAll(1, 2, 3, 4, 5)
	if q.Chunks() != 3 || q.Len() != 10 {
		t.Fatalf("expected 10 elements in 3 chunks, have %d/%d", q.Len(), q.Chunks())
	}
	if err := q.Check(); err != nil {
		t.Fatalf("queue %v is broken: %v", q, err)
	}
	return q
}

func drain(q Queue[int]) []int {
	var out []int
	for {
		v, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestEmptyQueues(t *testing.T) {
	for _, q := range []Queue[int]{NewLinked[int](), NewChunked[int](), &Linked[int]{}, &Chunked[int]{}} {
		if !q.IsEmpty() || q.Len() != 0 {
			t.Errorf("expected %T to be empty", q)
		}
		if _, ok := q.Dequeue(); ok {
			t.Errorf("Dequeue on empty %T should report absence", q)
		}
	}
}

func TestChunkedDequeue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow")
	defer teardown()
	//
	q := makeChunked(t)
	if v, _ := q.Peek(); v != 1 {
		t.Fatalf("expected 1 at the front, have %d", v)
	}
	var got []int
	for i := 9; i >= 0; i-- {
		v, ok := q.Dequeue()
		if !ok {
			t.Fatalf("queue ran empty early")
		}
		got = append(got, v)
		if q.Len() != i || q.IsEmpty() != (i == 0) {
			t.Fatalf("expected %d elements left, have %d", i, q.Len())
		}
		if err := q.Check(); err != nil {
			t.Fatalf("queue is broken: %v", err)
		}
	}
	if diff := cmp.Diff([]int{1, 1, 2, 3, 4, 1, 2, 3, 4, 5}, got); diff != "" {
		t.Fatalf("unexpected dequeue order (-want +got):\n%s", diff)
	}
	if q.Chunks() != 0 {
		t.Fatalf("expected all chunks to be dropped, %d left", q.Chunks())
	}
}

func TestChunkedCopyOnWrite(t *testing.T) {
	q := makeChunked(t)
	q2 := q.Clone()
	q.Enqueue(1)
	if q.Len() == q2.Len() {
		t.Fatalf("enqueue to q changed its clone")
	}
	if q.Copies() != 1 || q2.Copies() != 1 {
		t.Fatalf("expected exactly one copy, have %d/%d", q.Copies(), q2.Copies())
	}
	if err := q.Check(); err != nil {
		t.Fatalf("queue is broken: %v", err)
	}
	q2.Dequeue()
	q2.Dequeue()
	if v, _ := q.Peek(); v != 1 || q.Len() != 11 {
		t.Fatalf("dequeue from clone changed q")
	}
	if diff := cmp.Diff([]int{2, 3, 4, 1, 2, 3, 4, 5}, drain(q2)); diff != "" {
		t.Fatalf("unexpected clone contents (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 1, 2, 3, 4, 1, 2, 3, 4, 5, 1}, drain(q)); diff != "" {
		t.Fatalf("unexpected queue contents (-want +got):\n%s", diff)
	}
}

func TestChunkedCopiesInput(t *testing.T) {
	q := NewChunked[int]()
	batch := []int{1, 2}
	q.EnqueueAll(batch...)
	batch[0] = 9
	if v, _ := q.Dequeue(); v != 1 {
		t.Fatalf("queue aliases the enqueued slice")
	}
	q.EnqueueAll()
	if q.Chunks() != 1 {
		t.Fatalf("empty batch must not create a chunk")
	}
}

func TestLinked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow")
	defer teardown()
	//
	var q Linked[string]
	q.Enqueue("a")
	q.EnqueueAll("b", "c")
	if q.Len() != 3 {
		t.Fatalf("expected 3 elements, have %d", q.Len())
	}
	c := q.Clone()
	if v, ok := q.Dequeue(); !ok || v != "a" {
		t.Fatalf("expected a, have %q", v)
	}
	c.Enqueue("d")
	if diff := cmp.Diff([]string{"b", "c"}, slices.Collect(q.All())); diff != "" {
		t.Errorf("queue mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, slices.Collect(c.All())); diff != "" {
		t.Errorf("clone mismatch (-want +got):\n%s", diff)
	}
	if q.Copies() != 1 {
		t.Errorf("expected exactly one copy, have %d", q.Copies())
	}
	if v, _ := c.Peek(); v != "a" {
		t.Errorf("expected a at the front of the clone, have %q", v)
	}
}
