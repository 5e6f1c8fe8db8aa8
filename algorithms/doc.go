// Package algorithms is the single entry point to the tree-building graph
// algorithms on core.Graph.
//
// It provides free functions with the plain call shape of each algorithm:
//
//   - Traversals
//     – BFS(g, source)
//     – DFS(g, source)
//
//   - Shortest paths
//     – Dijkstra(g, source)
//
//   - Minimum spanning trees
//     – Prim(g), grown from vertex 0
//     – Kruskal(g)
//
// Each returns a newly allocated *core.Graph with g's vertex count. For
// hooks, depth limits, distance caps or an explicit Prim root, call the
// bfs, dfs, dijkstra and prim_kruskal packages directly.
//
// Run dispatches on a Method name and threads a zerolog.Logger through;
// cmd/graphdemo drives every algorithm with it. Run also feeds the
// Prometheus collectors in package metrics. The free functions do not.
package algorithms
