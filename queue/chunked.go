package queue

import (
	"fmt"

	"github.com/npillmayer/cow"
	"github.com/npillmayer/cow/list"
)

// chunk is a batch of enqueued elements, of which elems[pos:] are still
// waiting to be dequeued.
type chunk[T any] struct {
	elems []T
	pos   int
}

func (c chunk[T]) String() string {
	return fmt.Sprintf("(count: %d, pos: %d)", len(c.elems), c.pos)
}

// Chunked is a queue storing every batch of enqueued elements as one chunk.
// Dequeuing advances a read position within the front chunk and drops the
// chunk once it is exhausted. Chunks are never empty.
//
// The zero Chunked is an empty queue ready to use.
type Chunked[T any] struct {
	chunks *list.List[chunk[T]]
	n      int
}

// NewChunked creates an empty queue.
func NewChunked[T any]() *Chunked[T] {
	return &Chunked[T]{chunks: list.New[chunk[T]]()}
}

func (q *Chunked[T]) list() *list.List[chunk[T]] {
	if q.chunks == nil {
		q.chunks = list.New[chunk[T]]()
	}
	return q.chunks
}

// Enqueue appends v as a chunk of its own.
func (q *Chunked[T]) Enqueue(v T) {
	q.EnqueueAll(v)
}

// EnqueueAll appends values as one chunk. values is copied.
func (q *Chunked[T]) EnqueueAll(values ...T) {
	if len(values) == 0 {
		return
	}
	q.list().Append(chunk[T]{elems: append([]T(nil), values...)})
	q.n += len(values)
}

// Dequeue removes and returns the element at the front of q.
func (q *Chunked[T]) Dequeue() (T, bool) {
	l := q.list()
	c, ok := l.First()
	if !ok {
		var zero T
		return zero, false
	}
	v := c.elems[c.pos]
	c.pos++
	if c.pos == len(c.elems) {
		tracer().Debugf("queue: chunk %v exhausted", c)
		l.RemoveFirst()
	} else {
		l.SetAt(l.Start(), c)
	}
	q.n--
	return v, true
}

// Peek returns the element at the front of q without removing it.
func (q *Chunked[T]) Peek() (T, bool) {
	c, ok := q.list().First()
	if !ok {
		var zero T
		return zero, false
	}
	return c.elems[c.pos], true
}

func (q *Chunked[T]) IsEmpty() bool {
	return q.chunks.IsEmpty()
}

func (q *Chunked[T]) Len() int {
	return q.n
}

// Chunks returns the number of chunks in q.
func (q *Chunked[T]) Chunks() int {
	return q.chunks.Len()
}

// Clone returns a copy of q, sharing storage with q until one of them is
// mutated.
func (q *Chunked[T]) Clone() *Chunked[T] {
	return &Chunked[T]{chunks: q.list().Clone(), n: q.n}
}

// Copies returns the number of copy-on-write clones within q's lineage.
func (q *Chunked[T]) Copies() int {
	return q.list().Copies()
}

// Check validates the chunk list and the element count of q.
func (q *Chunked[T]) Check() error {
	l := q.list()
	if err := l.Check(); err != nil {
		return err
	}
	n := 0
	for c := range l.All() {
		if c.pos < 0 || c.pos >= len(c.elems) {
			return fmt.Errorf("%w: queue chunk %v is exhausted", cow.ErrBrokenStructure, c)
		}
		n += len(c.elems) - c.pos
	}
	if n != q.n {
		return fmt.Errorf("%w: queue holds %d elements, counted %d", cow.ErrBrokenStructure, n, q.n)
	}
	return nil
}

func (q *Chunked[T]) String() string {
	return fmt.Sprintf("Chunked%v", q.list())
}
