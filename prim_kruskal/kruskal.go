package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/unionfind"
)

// Kruskal computes a minimum spanning forest of g. On a connected graph it
// is a spanning tree; in general it holds exactly n − components edges.
//
// Steps:
//  1. Collect each record u→v with u < v, so every undirected edge once and
//     no self-loops.
//  2. Sort by ascending Weight with sort.SliceStable for deterministic ties.
//  3. Walk the sorted edges; keep one whenever its endpoints are not yet
//     connected in the union-find, then unite them.
//  4. Stop early once n−1 edges are kept.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph, opts ...Option) (*core.Graph, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	n := graph.VertexCount()

	// 2. Collect edges.
	var edges []core.Edge
	for u := 0; u < n; u++ {
		nbs, err := graph.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			if u < nb.Vertex {
				edges = append(edges, core.Edge{From: u, To: nb.Vertex, Weight: nb.Weight})
			}
		}
	}
	o.Logger.Debug().Int("vertices", n).Int("candidates", len(edges)).Msg("kruskal: start")

	// 3. Sort edges by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Build the forest.
	tree := core.NewGraph(n)
	uf := unionfind.New(n)
	kept := 0
	for _, e := range edges {
		if kept == n-1 {
			break
		}
		if uf.Connected(e.From, e.To) {
			continue
		}
		if err := tree.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
		uf.Unite(e.From, e.To)
		kept++
		o.Logger.Debug().Int("from", e.From).Int("to", e.To).Int64("weight", e.Weight).Msg("kruskal: tree edge")
	}
	o.Logger.Debug().Int("edges", kept).Int("components", uf.Count()).Msg("kruskal: done")

	return tree, nil
}
