package core

import (
	"errors"
	"fmt"
)

// ErrInvalidVertex indicates an operation referenced an index outside [0, n).
var ErrInvalidVertex = errors.New("core: invalid vertex index")

// VertexError carries the offending index of an ErrInvalidVertex failure.
// errors.Is(err, ErrInvalidVertex) holds for every *VertexError.
type VertexError struct {
	// Op names the operation that rejected the index, e.g. "AddEdge".
	Op string

	// Vertex is the rejected index.
	Vertex int

	// Count is the vertex count of the graph at the time of the call.
	Count int
}

// Error implements the error interface.
func (e *VertexError) Error() string {
	return fmt.Sprintf("%s: %s: vertex %d not in [0, %d)", ErrInvalidVertex, e.Op, e.Vertex, e.Count)
}

// Unwrap exposes ErrInvalidVertex to errors.Is.
func (e *VertexError) Unwrap() error { return ErrInvalidVertex }

// Neighbor is one adjacency record: the target vertex and the edge weight.
type Neighbor struct {
	// Vertex is the index of the record's target.
	Vertex int

	// Weight is the cost of the edge.
	Weight int64
}

// Edge is a flattened (From, To, Weight) view of a neighbor record,
// returned by Graph.Edges.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Graph is the in-memory adjacency-list graph.
//
// n is fixed for the lifetime of the Graph; adj[v] holds v's neighbor
// records in insertion order.
type Graph struct {
	n   int
	adj [][]Neighbor
}

// NewGraph creates a Graph with n isolated vertices 0..n-1.
// A negative n is treated as 0.
// Complexity: O(n)
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{
		n:   n,
		adj: make([][]Neighbor, n),
	}
}
