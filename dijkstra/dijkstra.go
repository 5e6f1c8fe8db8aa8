package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/pqueue"
)

// runner holds the per-call state of one shortest-path computation.
type runner struct {
	graph   *core.Graph
	opts    Options
	pq      *pqueue.PriorityQueue
	dist    []int64
	parent  []int
	parentW []int64
	visited []bool
}

// Dijkstra returns the shortest-path tree of g rooted at source as a new
// directed graph: for every reached vertex v ≠ source it holds exactly one
// record parent[v]→v with the weight of the relaxing edge.
// Unreached vertices stay isolated. g is not modified.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*core.Graph, error) {
	r, err := run(g, source, opts)
	if err != nil {
		return nil, err
	}

	tree := core.NewGraph(g.VertexCount())
	for v, p := range r.parent {
		if p < 0 || r.dist[v] == pqueue.Infinity {
			continue
		}
		if err = tree.AddDirectedEdge(p, v, r.parentW[v]); err != nil {
			return nil, err
		}
	}
	r.opts.Logger.Debug().Int("tree_records", tree.EdgeCount()).Msg("dijkstra: done")

	return tree, nil
}

// Distances runs the same computation as Dijkstra and returns the distance
// and parent slices instead of a tree. Unreached vertices report
// pqueue.Infinity and parent -1; the source has distance 0 and parent -1.
func Distances(g *core.Graph, source int, opts ...Option) ([]int64, []int, error) {
	r, err := run(g, source, opts)
	if err != nil {
		return nil, nil, err
	}

	return r.dist, r.parent, nil
}

func run(g *core.Graph, source int, opts []Option) (*runner, error) {
	// 1) Validate graph and options
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := g.Validate(source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	// 2) Seed every vertex; only the source is finite
	n := g.VertexCount()
	r := &runner{
		graph:   g,
		opts:    cfg,
		pq:      pqueue.New(n),
		dist:    make([]int64, n),
		parent:  make([]int, n),
		parentW: make([]int64, n),
		visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = pqueue.Infinity
		r.parent[v] = -1
	}
	r.dist[source] = 0
	for v := 0; v < n; v++ {
		r.pq.Insert(v, r.dist[v])
	}
	cfg.Logger.Debug().Int("source", source).Int("vertices", n).Msg("dijkstra: start")

	// 3) Settle vertices in distance order
	if err := r.loop(); err != nil {
		cfg.Logger.Warn().Err(err).Msg("dijkstra: aborted")

		return nil, err
	}

	// 4) Anything not settled counts as unreached
	for v := 0; v < n; v++ {
		if !r.visited[v] {
			r.dist[v] = pqueue.Infinity
			r.parent[v] = -1
		}
	}

	return r, nil
}

func (r *runner) loop() error {
	for !r.pq.IsEmpty() {
		item, err := r.pq.ExtractMin()
		if err != nil {
			return err
		}
		// everything left is unreachable, or beyond the cap
		if item.Distance == pqueue.Infinity || item.Distance > r.opts.MaxDistance {
			return nil
		}
		u := item.Vertex
		r.visited[u] = true

		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every record of u in order.
func (r *runner) relax(u int) error {
	nbs, err := r.graph.Neighbors(u)
	if err != nil {
		return err
	}
	for _, nb := range nbs {
		v, w := nb.Vertex, nb.Weight
		if w < 0 {
			return &EdgeError{From: u, To: v, Weight: w}
		}
		if r.visited[v] || w >= r.opts.InfEdgeThreshold {
			continue
		}
		// dist[u] + w would overflow past Infinity
		if w > pqueue.Infinity-1-r.dist[u] {
			continue
		}
		if alt := r.dist[u] + w; alt < r.dist[v] {
			r.dist[v] = alt
			r.parent[v] = u
			r.parentW[v] = w
			r.pq.UpdateDistance(v, alt)
		}
	}

	return nil
}
