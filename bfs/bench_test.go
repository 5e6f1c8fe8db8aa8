package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlgraph/bfs"
	"github.com/katalvlaran/lvlgraph/builder"
)

// BenchmarkBFS_Grid runs BFS on a 100×100 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 100
	g, err := builder.BuildGraph(side*side, nil, builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
