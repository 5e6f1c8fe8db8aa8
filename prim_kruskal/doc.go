// Package prim_kruskal computes minimum spanning trees and forests of a
// core.Graph with Prim's and Kruskal's algorithms.
//
// Both return a new undirected graph with the input's vertex count; the
// input is never modified. Self-loops are never selected.
//
// Algorithms Provided
//
//   - Prim(g, opts...)
//
//   - Strategy: grow one tree from a root (vertex 0 unless WithRoot is
//     given). Every vertex sits in a pqueue.PriorityQueue keyed by its
//     cheapest known connection to the tree; each round pulls the cheapest
//     one in and lowers its neighbors' keys with UpdateDistance. An Infinity
//     key ends the run.
//
//   - Disconnected input: vertices outside the root's component stay
//     isolated. The result spans the root's component only; this is not
//     an error.
//
//   - Complexity: O(V² + E·V) time with the linear-scan decrease-key,
//     O(V) extra space.
//
//   - Kruskal(g, opts...)
//
//   - Strategy: collect each record u→v with u < v once, stable-sort by
//     weight, then keep an edge whenever a unionfind.UnionFind says its
//     endpoints are not yet connected.
//
//   - Disconnected input: the result is a minimum spanning forest with
//     exactly n − components edges, none crossing components.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) space.
//
//   - Determinism: records are collected in vertex and insertion order and
//     the sort is stable, so ties always break the same way.
//
// Compute dispatches on MSTOptions.Method and also returns the total weight.
//
// Error Conditions
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - core.ErrInvalidVertex (Prim only) if the root is out of range.
//   - ErrUnknownMethod     (Compute only) for an unrecognized Method.
package prim_kruskal
