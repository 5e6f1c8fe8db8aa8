// Package queue provides a bounded FIFO of vertex indices backed by a
// circular buffer.
//
// Capacity is fixed at construction. Traversals size it to the vertex count
// and enqueue each vertex at most once, so ErrOverflow and ErrUnderflow
// point at a caller defect rather than a user-facing condition.
package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue misuse.
var (
	// ErrOverflow is returned by Enqueue when the queue is at capacity.
	ErrOverflow = errors.New("queue: overflow")

	// ErrUnderflow is returned by Dequeue when the queue is empty.
	ErrUnderflow = errors.New("queue: underflow")
)

// Queue is a fixed-capacity circular FIFO of ints.
type Queue struct {
	data  []int
	front int // index of the oldest element
	rear  int // index of the next free slot
	size  int
}

// New returns an empty Queue holding at most capacity elements.
// A negative capacity is treated as 0.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{data: make([]int, capacity)}
}

// Enqueue appends x at the rear.
// Complexity: O(1)
func (q *Queue) Enqueue(x int) error {
	if q.size == len(q.data) {
		return fmt.Errorf("%w: capacity %d reached", ErrOverflow, len(q.data))
	}
	q.data[q.rear] = x
	q.rear = (q.rear + 1) % len(q.data)
	q.size++

	return nil
}

// Dequeue removes and returns the front element.
// Complexity: O(1)
func (q *Queue) Dequeue() (int, error) {
	if q.size == 0 {
		return 0, ErrUnderflow
	}
	x := q.data[q.front]
	q.front = (q.front + 1) % len(q.data)
	q.size--

	return x, nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue) IsEmpty() bool { return q.size == 0 }

// Len returns the number of queued elements.
func (q *Queue) Len() int { return q.size }

// Cap returns the fixed capacity.
func (q *Queue) Cap() int { return len(q.data) }
