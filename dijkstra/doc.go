// Package dijkstra builds single-source shortest-path trees on a core.Graph
// with non-negative weights.
//
// Every vertex is seeded into a pqueue.PriorityQueue: the source at 0, the
// rest at pqueue.Infinity. Each round extracts the closest unsettled vertex
// and relaxes its records; improved distances are pushed back with
// UpdateDistance. Extraction of an Infinity key ends the run, because no
// remaining vertex is reachable.
//
// Negative weights
//
//	The check is lazy: a negative record aborts the run with an *EdgeError
//	(errors.Is ErrNegativeWeight) only when it is examined. A negative edge
//	inside a component the source never reaches is therefore not reported.
//
// Result
//
//	Dijkstra returns a directed tree: one parent→v record, carrying the
//	weight of the relaxing edge, for every reached vertex other than the
//	source. Distances exposes the raw distance and parent slices instead.
//
// Complexity:
//
//   - Time:  O(V² + E·V); decrease-key is a linear scan in pqueue.
//   - Space: O(V)
//
// Options:
//
//   - WithLogger(l):             zerolog logger for run events.
//   - WithMaxDistance(x):        settle only vertices at distance ≤ x (x ≥ 0).
//   - WithInfEdgeThreshold(t):   records with weight ≥ t are impassable (t > 0).
package dijkstra
