package core_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph with three isolated vertices.
	g := core.NewGraph(3)

	// 2) Add two undirected edges.
	_ = g.AddEdge(0, 1, 5)
	_ = g.AddEdge(1, 2, 2)

	// 3) Inspect the mirror record and remove an edge.
	fmt.Println("edge 1→0 exists?", g.HasEdge(1, 0))
	_ = g.RemoveEdge(0, 1)
	fmt.Println("after removal:", g.HasEdge(0, 1), g.HasEdge(1, 0))

	// 4) Out-of-range indices are reported, never panicked on.
	fmt.Println(g.AddEdge(0, 7, 1))

	// Output:
	// edge 1→0 exists? true
	// after removal: false false
	// core: invalid vertex index: AddEdge: vertex 7 not in [0, 3)
}

// ExampleGraph_WriteTo prints the adjacency dump.
func ExampleGraph_WriteTo() {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)

	_, _ = g.WriteTo(os.Stdout)
	// Output:
	// Adjacency List:
	//   [0] --> 1 (w:4) -> 2 (w:1)
	//   [1] --> 0 (w:4)
	//   [2] --> 0 (w:1)
}
