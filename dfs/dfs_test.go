package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
)

func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 5))
	require.NoError(t, g.AddEdge(2, 3, 8))
	require.NoError(t, g.AddEdge(3, 4, 3))

	return g
}

// TestDFS_Errors covers nil graph and bad source.
func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(2), 2)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	var ve *core.VertexError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 2, ve.Vertex)
}

// TestDFS_PreAndPostOrder matches the recursive visit order.
func TestDFS_PreAndPostOrder(t *testing.T) {
	var pre, depths, post []int
	tree, err := dfs.DFS(diamond(t), 0,
		dfs.WithOnVisit(func(v, d int) error {
			pre = append(pre, v)
			depths = append(depths, d)

			return nil
		}),
		dfs.WithOnExit(func(v int) error {
			post = append(post, v)

			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, pre)
	assert.Equal(t, []int{0, 1, 2, 3, 3}, depths)
	assert.Equal(t, []int{2, 4, 3, 1, 0}, post)

	// 2 hangs below 3, not below 0
	assert.True(t, tree.HasEdge(3, 2))
	assert.False(t, tree.HasEdge(0, 2))
	assert.Equal(t, 2*4, tree.EdgeCount())
}

// TestDFS_Components leaves unreachable vertices isolated.
func TestDFS_Components(t *testing.T) {
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	tree, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, 2*2, tree.EdgeCount())
	assert.False(t, tree.HasEdge(3, 4))
}

// TestDFS_LongChain walks a path far deeper than a comfortable recursion.
func TestDFS_LongChain(t *testing.T) {
	const n = 50000
	g := core.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	tree, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2*(n-1), tree.EdgeCount())
}

// TestDFS_HookErrors wraps hook failures and returns no tree.
func TestDFS_HookErrors(t *testing.T) {
	boom := errors.New("boom")

	tree, err := dfs.DFS(diamond(t), 0, dfs.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, tree)

	tree, err = dfs.DFS(diamond(t), 0, dfs.WithOnExit(func(int) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, tree)
}
