// Package bfs builds a breadth-first spanning tree of a core.Graph.
//
// What
//
//   - Starting at a source vertex, vertices are discovered in non-decreasing
//     hop distance. Each vertex is discovered at most once.
//   - When a vertex v is first seen from u through a record (v, w), the
//     undirected tree edge u—v with weight w is added to the result.
//   - The result is a new core.Graph with the same vertex count; vertices
//     unreachable from the source stay isolated.
//
// Determinism
//
//	Neighbor records are scanned in insertion order, so for a given graph the
//	visit order and the resulting tree are fully reproducible.
//
// Complexity (V = vertices, E = neighbor records)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the bounded queue and the visited set.
//
// Options
//
//   - WithLogger(l):   zerolog logger for start/edge/finish events.
//   - WithMaxDepth(d): stop discovering beyond hop depth d (>0); 0 = no limit.
//   - WithOnVisit(fn): called on each dequeued vertex; an error aborts.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - core.ErrInvalidVertex  if the source is out of range.
//   - ErrOptionViolation     for an invalid option (negative depth).
//   - Wrapped OnVisit errors.
package bfs
