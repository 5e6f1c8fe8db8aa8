package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/pqueue"
)

// Prim grows a minimum spanning tree of g from a root vertex, 0 by default.
//
// Error Conditions:
//   - ErrGraphNil          : if graph is nil.
//   - core.ErrInvalidVertex: if the root is out of range. An empty graph
//     with the default root is not an error and yields an empty result.
//
// Steps:
//  1. Seed every vertex in the priority queue at Infinity, the root at 0.
//  2. Extract the cheapest vertex; an Infinity key means the rest of the
//     graph is unreachable, so stop.
//  3. Mark it in-tree; for each neighbor not yet in-tree whose edge beats
//     its key, record the edge and lower the key.
//  4. Emit one undirected edge (v, parent[v]) per non-root vertex that has
//     a parent.
//
// Complexity: O(V² + E·V) time, O(V) memory.
func Prim(graph *core.Graph, opts ...Option) (*core.Graph, error) {
	// 1. Validate graph and root.
	if graph == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	n := graph.VertexCount()
	if n == 0 && !o.rootSet {
		return core.NewGraph(0), nil
	}
	if err := graph.Validate(o.Root); err != nil {
		return nil, fmt.Errorf("prim_kruskal: root: %w", err)
	}
	root := o.Root
	o.Logger.Debug().Int("root", root).Int("vertices", n).Msg("prim: start")

	// 2. Initialize keys, parents and the queue.
	key := make([]int64, n)
	parent := make([]int, n)
	parentW := make([]int64, n)
	inTree := make([]bool, n)
	pq := pqueue.New(n)
	for v := 0; v < n; v++ {
		key[v] = pqueue.Infinity
		parent[v] = -1
	}
	key[root] = 0
	for v := 0; v < n; v++ {
		pq.Insert(v, key[v])
	}

	// 3. Grow the tree.
	for !pq.IsEmpty() {
		item, err := pq.ExtractMin()
		if err != nil {
			return nil, err
		}
		if item.Distance == pqueue.Infinity {
			break
		}
		u := item.Vertex
		inTree[u] = true

		nbs, err := graph.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			v := nb.Vertex
			if inTree[v] || nb.Weight >= key[v] {
				continue
			}
			key[v] = nb.Weight
			parent[v] = u
			parentW[v] = nb.Weight
			pq.UpdateDistance(v, nb.Weight)
		}
	}

	// 4. Materialize the tree.
	tree := core.NewGraph(n)
	for v := 0; v < n; v++ {
		if v == root || parent[v] < 0 {
			continue
		}
		if err := tree.AddEdge(v, parent[v], parentW[v]); err != nil {
			return nil, err
		}
		o.Logger.Debug().Int("from", parent[v]).Int("to", v).Int64("weight", parentW[v]).Msg("prim: tree edge")
	}
	o.Logger.Debug().Int64("total", Weight(tree)).Msg("prim: done")

	return tree, nil
}
