// Package core provides the fixed-size, weighted, undirected adjacency-list
// Graph that every algorithm in lvlgraph consumes and produces.
//
// The Graph G = (V,E) has a vertex set fixed at construction:
//
//   - Vertices are the integers 0..n-1; they are never added or removed.
//   - Each vertex owns a slice of Neighbor records (target vertex, int64 weight).
//   - AddEdge mirrors every record, so u→v and v→u always come in pairs.
//   - AddDirectedEdge stores only u→v; it exists for shortest-path trees,
//     which encode the parent→child direction.
//   - Self-loops and parallel edges are accepted as-is. A self-loop stores
//     two records in the same slice, one per side.
//
// Neighbor order is insertion order, but callers must not depend on it:
// the only contract is that every live record is enumerated exactly once.
//
// Core Methods:
//
//	NewGraph(n int) *Graph                          // O(n)
//	AddEdge(u, v int, w int64) error                // O(1) amortized
//	AddDirectedEdge(u, v int, w int64) error        // O(1) amortized
//	RemoveEdge(u, v int) error                      // O(deg(u)+deg(v))
//	Neighbors(v int) ([]Neighbor, error)            // O(1), live slice
//	VertexCount() int                               // O(1)
//	Validate(v int) error                           // O(1)
//
// Queries and utilities:
//
//	HasEdge, EdgeWeight, Edges, EdgeCount, TotalWeight, Clone, WriteTo, String
//
// Errors:
//
//	ErrInvalidVertex – an index outside [0, n); returned wrapped in *VertexError.
//
// Concurrency: a Graph carries no locks. Callers that share one across
// goroutines must serialize AddEdge/RemoveEdge themselves.
package core
