// Package pqueue provides a binary min-heap of (vertex, distance) items used
// by Dijkstra and Prim.
//
// Lookups by vertex (Contains, Distance, UpdateDistance) scan the heap slice
// linearly; there is no vertex→index map. That keeps the structure small at
// the cost of O(n) decrease-key, so callers pay O(V²) overall instead of
// O((V+E) log V).
//
// Ordering is maintained through container/heap: Insert pushes and
// UpdateDistance calls heap.Fix, which sifts up or down as needed.
package pqueue

import (
	"container/heap"
	"errors"
	"math"
)

// Infinity is the distance used for "not reached yet".
const Infinity int64 = math.MaxInt64

// ErrEmpty is returned by ExtractMin on an empty queue.
var ErrEmpty = errors.New("pqueue: extract from empty heap")

// Item is one heap entry.
type Item struct {
	Vertex   int
	Distance int64
}

// PriorityQueue is a min-heap of Items keyed by Distance.
type PriorityQueue struct {
	items itemHeap
}

// New returns an empty queue with room for capacity items before growing.
func New(capacity int) *PriorityQueue {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue{items: make(itemHeap, 0, capacity)}
}

// Insert adds vertex with the given distance and restores heap order.
// Duplicate vertices are not detected.
// Complexity: O(log n)
func (pq *PriorityQueue) Insert(vertex int, distance int64) {
	heap.Push(&pq.items, Item{Vertex: vertex, Distance: distance})
}

// ExtractMin removes and returns the item with the smallest distance.
// Ties are broken arbitrarily.
// Complexity: O(log n)
func (pq *PriorityQueue) ExtractMin() (Item, error) {
	if len(pq.items) == 0 {
		return Item{}, ErrEmpty
	}

	return heap.Pop(&pq.items).(Item), nil
}

// Peek returns the minimum item without removing it.
func (pq *PriorityQueue) Peek() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}

	return pq.items[0], true
}

// Contains reports whether vertex is currently stored.
// Complexity: O(n)
func (pq *PriorityQueue) Contains(vertex int) bool {
	return pq.indexOf(vertex) >= 0
}

// Distance returns the stored distance of vertex, or (Infinity, false) when
// the vertex is not in the queue.
// Complexity: O(n)
func (pq *PriorityQueue) Distance(vertex int) (int64, bool) {
	i := pq.indexOf(vertex)
	if i < 0 {
		return Infinity, false
	}

	return pq.items[i].Distance, true
}

// UpdateDistance sets the distance of the first entry for vertex and
// re-heapifies. It returns false, and changes nothing, if the vertex is absent.
// Complexity: O(n) scan + O(log n) fix.
func (pq *PriorityQueue) UpdateDistance(vertex int, distance int64) bool {
	i := pq.indexOf(vertex)
	if i < 0 {
		return false
	}
	pq.items[i].Distance = distance
	heap.Fix(&pq.items, i)

	return true
}

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue) IsEmpty() bool { return len(pq.items) == 0 }

// Len returns the number of stored items.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

func (pq *PriorityQueue) indexOf(vertex int) int {
	for i, it := range pq.items {
		if it.Vertex == vertex {
			return i
		}
	}

	return -1
}

// itemHeap implements heap.Interface for []Item, ordering by smallest
// Distance first.
type itemHeap []Item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].Distance < h[j].Distance }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
