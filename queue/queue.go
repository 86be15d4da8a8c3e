/*
Package queue implements FIFO queues on top of the copy-on-write list of
package list.

Linked is a plain queue holding one list element per queue element. Chunked
is meant for producers which enqueue elements in batches: every batch is kept
as one list element, and dequeuing advances a read position within the first
batch. Both queues are cheap to clone.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package queue

import (
	"iter"

	"github.com/npillmayer/cow/list"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cow'
func tracer() tracing.Trace {
	return tracing.Select("cow")
}

// Queue is a first-in first-out queue.
type Queue[T any] interface {
	Enqueue(v T)
	Dequeue() (T, bool) // false if the queue is empty
	IsEmpty() bool
	Len() int
}

// BatchQueue is a queue accepting a batch of elements at once.
type BatchQueue[T any] interface {
	Queue[T]
	EnqueueAll(values ...T)
}

var (
	_ BatchQueue[int] = (*Linked[int])(nil)
	_ BatchQueue[int] = (*Chunked[int])(nil)
)

// Linked is a queue holding its elements in a list.
// The zero Linked is an empty queue ready to use.
type Linked[T any] struct {
	elems *list.List[T]
}

// NewLinked creates an empty queue.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{elems: list.New[T]()}
}

func (q *Linked[T]) list() *list.List[T] {
	if q.elems == nil {
		q.elems = list.New[T]()
	}
	return q.elems
}

// Enqueue appends v at the back of q.
func (q *Linked[T]) Enqueue(v T) {
	q.list().Append(v)
}

// EnqueueAll appends values at the back of q.
func (q *Linked[T]) EnqueueAll(values ...T) {
	q.list().AppendAll(values...)
}

// Dequeue removes and returns the element at the front of q.
func (q *Linked[T]) Dequeue() (T, bool) {
	return q.list().RemoveFirst()
}

// Peek returns the element at the front of q without removing it.
func (q *Linked[T]) Peek() (T, bool) {
	return q.list().First()
}

func (q *Linked[T]) IsEmpty() bool {
	return q.elems.IsEmpty()
}

func (q *Linked[T]) Len() int {
	return q.elems.Len()
}

// All returns an iterator over the elements of q, front to back.
func (q *Linked[T]) All() iter.Seq[T] {
	return q.elems.All()
}

// Clone returns a copy of q, sharing storage with q until one of them is
// mutated.
func (q *Linked[T]) Clone() *Linked[T] {
	return &Linked[T]{elems: q.list().Clone()}
}

// Copies returns the number of copy-on-write clones within q's lineage.
func (q *Linked[T]) Copies() int {
	return q.list().Copies()
}
