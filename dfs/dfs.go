package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// frame is one explicit-stack entry: the vertex and the index of the next
// neighbor record to examine.
type frame struct {
	v    int
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	visited []bool
	stack   []frame
	tree    *core.Graph
}

// DFS performs depth-first search on g from source and returns the DFS tree
// as a new undirected graph with g's vertex count. g is not modified.
func DFS(g *core.Graph, source int, opts ...Option) (*core.Graph, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Verify source
	if err := g.Validate(source); err != nil {
		return nil, fmt.Errorf("dfs: source: %w", err)
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		stack:   make([]frame, 0, n),
		tree:    core.NewGraph(n),
	}
	o.Logger.Debug().Int("source", source).Int("vertices", n).Msg("dfs: start")

	// 4. Traverse
	if err := w.traverse(source); err != nil {
		o.Logger.Warn().Err(err).Msg("dfs: aborted")

		return nil, err
	}
	o.Logger.Debug().Int("tree_records", w.tree.EdgeCount()).Msg("dfs: done")

	return w.tree, nil
}

// traverse runs the explicit-stack loop rooted at source.
func (w *dfsWalker) traverse(source int) error {
	if err := w.enter(source); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		nbs, err := w.graph.Neighbors(top.v)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", top.v, err)
		}

		// exhausted: post-order and pop
		if top.next >= len(nbs) {
			u := top.v
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err = w.opts.OnExit(u); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %d: %w", u, err)
				}
			}
			continue
		}

		nb := nbs[top.next]
		top.next++
		if w.visited[nb.Vertex] {
			continue
		}
		u := top.v
		if err = w.tree.AddEdge(u, nb.Vertex, nb.Weight); err != nil {
			return err
		}
		w.opts.Logger.Debug().Int("from", u).Int("to", nb.Vertex).Int64("weight", nb.Weight).Msg("dfs: tree edge")
		// top is invalid after enter appends to the stack
		if err = w.enter(nb.Vertex); err != nil {
			return err
		}
	}

	return nil
}

// enter marks v visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) enter(v int) error {
	w.visited[v] = true
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, len(w.stack)); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	w.stack = append(w.stack, frame{v: v})

	return nil
}
