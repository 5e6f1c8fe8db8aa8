// Package dfs builds a depth-first spanning tree of a core.Graph.
//
// The traversal uses an explicit stack of (vertex, next-neighbor) frames
// instead of recursion, so the visit order is exactly that of the recursive
// formulation while the Go call stack stays flat on long paths.
//
// For each vertex u popped into focus, its neighbor records are scanned in
// insertion order; the first unvisited neighbor v gets the undirected tree
// edge u—v and becomes the new top of the stack. When u has no unvisited
// neighbor left, its frame is popped.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frame stack and the visited set.
//
// Options:
//
//   - WithLogger(l)     zerolog logger for start/edge/finish events.
//   - WithOnVisit(fn)   pre-order hook on discovery; error aborts traversal.
//   - WithOnExit(fn)    post-order hook after all descendants; error aborts.
//
// Errors:
//
//   - ErrGraphNil              if g is nil.
//   - core.ErrInvalidVertex    if source is out of range.
//   - any error returned by OnVisit or OnExit.
package dfs
