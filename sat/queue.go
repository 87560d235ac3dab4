package sat

import (
	"fmt"
	"strings"
)

// Queue is a FIFO queue implemented as a slice with a moving head. Popped
// space is reclaimed by shifting the remaining elements down once the head
// has crossed half of the backing slice, and by resetting the head whenever
// the queue is drained.
type Queue[T any] struct {
	elems []T
	head  int
}

// NewQueue returns a new Queue with the given initial capacity.
func NewQueue[T any](capa int) *Queue[T] {
	return &Queue[T]{elems: make([]T, 0, capa)}
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == len(q.elems)
}

func (q *Queue[T]) Size() int {
	return len(q.elems) - q.head
}

// Clear removes all the elements from the queue.
func (q *Queue[T]) Clear() {
	clear(q.elems)
	q.elems = q.elems[:0]
	q.head = 0
}

func (q *Queue[T]) Push(elem T) {
	q.elems = append(q.elems, elem)
}

func (q *Queue[T]) Pop() T {
	if q.IsEmpty() {
		panic("pop on an empty queue")
	}
	elem := q.elems[q.head]
	var zero T
	q.elems[q.head] = zero // drop the reference for the GC
	q.head++

	if q.IsEmpty() {
		q.elems = q.elems[:0]
		q.head = 0
	} else if q.head > 32 && q.head > len(q.elems)/2 {
		n := copy(q.elems, q.elems[q.head:])
		clear(q.elems[n:])
		q.elems = q.elems[:n]
		q.head = 0
	}
	return elem
}

func (q *Queue[T]) String() string {
	if q.IsEmpty() {
		return "Queue[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Queue[")
	sb.WriteString(fmt.Sprintf("%v", q.elems[q.head]))
	for _, e := range q.elems[q.head+1:] {
		sb.WriteString(fmt.Sprintf(" %v", e))
	}
	sb.WriteByte(']')
	return sb.String()
}
