package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlgraph/builder"
	"github.com/katalvlaran/lvlgraph/dfs"
)

// BenchmarkDFS_Dense runs DFS on a complete graph of 300 vertices.
func BenchmarkDFS_Dense(b *testing.B) {
	const n = 300
	g, err := builder.BuildGraph(n, nil, builder.Complete(n))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dfs.DFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
