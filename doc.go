// Package lvlgraph is a small in-memory graph engine: a fixed-size weighted
// adjacency-list graph plus the classic traversals, shortest paths and
// minimum spanning trees built on top of it.
//
// What lives where:
//
//	core/         - Graph: fixed vertex count, weighted undirected (or directed) edges
//	queue/        - bounded circular FIFO used by BFS
//	pqueue/       - binary min-heap of (vertex, distance) with decrease-key
//	unionfind/    - disjoint sets with path compression and union by rank
//	bfs/, dfs/    - traversal trees, with OnVisit hooks
//	dijkstra/     - single-source shortest-path tree, negative edges rejected
//	prim_kruskal/ - minimum spanning tree / forest
//	algorithms/   - one-call facade and the Method dispatcher
//	metrics/      - Prometheus collectors fed by algorithms.Run
//	builder/      - deterministic topology constructors (path, cycle, grid, …)
//	cmd/graphdemo - env-configured demo printing every result tree
//
// Every algorithm returns a brand-new core.Graph with the same vertex count
// as its input; the input is never mutated.
//
// Quick example:
//
//	g := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//	tree, err := algorithms.Dijkstra(g, 0)
//
//	go get github.com/katalvlaran/lvlgraph
package lvlgraph
