package algorithms

import (
	"github.com/katalvlaran/lvlgraph/bfs"
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
	"github.com/katalvlaran/lvlgraph/dijkstra"
	"github.com/katalvlaran/lvlgraph/prim_kruskal"
)

// BFS returns the breadth-first tree of source's component.
func BFS(g *core.Graph, source int) (*core.Graph, error) {
	return bfs.BFS(g, source)
}

// DFS returns the depth-first tree of source's component.
func DFS(g *core.Graph, source int) (*core.Graph, error) {
	return dfs.DFS(g, source)
}

// Dijkstra returns the directed shortest-path tree rooted at source.
// It fails with dijkstra.ErrNegativeWeight when a negative record is examined.
func Dijkstra(g *core.Graph, source int) (*core.Graph, error) {
	return dijkstra.Dijkstra(g, source)
}

// Prim returns the minimum spanning tree of vertex 0's component.
func Prim(g *core.Graph) (*core.Graph, error) {
	return prim_kruskal.Prim(g)
}

// Kruskal returns a minimum spanning forest of g.
func Kruskal(g *core.Graph) (*core.Graph, error) {
	return prim_kruskal.Kruskal(g)
}
