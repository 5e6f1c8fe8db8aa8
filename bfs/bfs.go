package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/queue"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   *queue.Queue
	visited []bool
	depth   []int
	tree    *core.Graph
}

// BFS runs breadth-first search on g from source and returns the BFS tree
// as a new undirected graph with g's vertex count.
// g is not modified.
func BFS(g *core.Graph, source int, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(source); err != nil {
		return nil, fmt.Errorf("bfs: source: %w", err)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   queue.New(n),
		visited: make([]bool, n),
		depth:   make([]int, n),
		tree:    core.NewGraph(n),
	}
	o.Logger.Debug().Int("source", source).Int("vertices", n).Msg("bfs: start")

	if err := w.discover(source, 0); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		o.Logger.Warn().Err(err).Msg("bfs: aborted")

		return nil, err
	}
	o.Logger.Debug().Int("tree_records", w.tree.EdgeCount()).Msg("bfs: done")

	return w.tree, nil
}

// discover marks v visited at depth d and enqueues it.
func (w *walker) discover(v, d int) error {
	w.visited[v] = true
	w.depth[v] = d

	return w.queue.Enqueue(v)
}

// loop drains the queue, visiting each vertex and discovering its neighbors.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		u, err := w.queue.Dequeue()
		if err != nil {
			return err
		}
		if err = w.opts.OnVisit(u, w.depth[u]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if err = w.expand(u); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers every unseen neighbor of u and records its tree edge.
func (w *walker) expand(u int) error {
	next := w.depth[u] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(u)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		if w.visited[nb.Vertex] {
			continue
		}
		if err = w.discover(nb.Vertex, next); err != nil {
			return err
		}
		if err = w.tree.AddEdge(u, nb.Vertex, nb.Weight); err != nil {
			return err
		}
		w.opts.Logger.Debug().Int("from", u).Int("to", nb.Vertex).Int64("weight", nb.Weight).Msg("bfs: tree edge")
	}

	return nil
}
