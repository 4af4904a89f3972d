// Package queue implements a bounded FIFO queue backed by a ring buffer.
package queue

// Queue is a bounded first in first out queue. A queue created with a capacity
// of n holds at most n-1 pending values, one slot is kept free to tell a full
// ring from an empty one.
type Queue[T any] struct {
	data []T
	head int // next slot to write
	tail int // next slot to read
}

// New returns a new queue with the given number of slots. Capacities below 2
// are raised to 2 so that the queue can hold at least one value.
func New[T any](capacity int) *Queue[T] {
	capacity = max(capacity, 2)
	return &Queue[T]{
		data: make([]T, capacity),
	}
}

// Push appends a value to the queue. It returns false and drops the value if the
// queue is full.
func (q *Queue[T]) Push(value T) bool {
	if q.Full() {
		return false
	}
	q.data[q.head] = value
	q.head = (q.head + 1) % len(q.data)
	return true
}

// Pop removes and returns the oldest value of the queue.
func (q *Queue[T]) Pop() (T, bool) {
	var value T
	if q.Empty() {
		return value, false
	}
	value = q.data[q.tail]
	q.tail = (q.tail + 1) % len(q.data)
	return value, true
}

// Empty returns whether the queue has no pending values.
func (q *Queue[T]) Empty() bool {
	return q.head == q.tail
}

// Full returns whether the next Push will drop its value.
func (q *Queue[T]) Full() bool {
	return (q.head+1)%len(q.data) == q.tail
}

// Len returns the number of pending values.
func (q *Queue[T]) Len() int {
	return (q.head - q.tail + len(q.data)) % len(q.data)
}

// Cap returns the number of slots of the queue.
func (q *Queue[T]) Cap() int {
	return len(q.data)
}
