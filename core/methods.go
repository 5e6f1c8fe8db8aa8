package core

import "slices"

// Validate reports whether v is a vertex of g.
// It is the single range check used by every operation in this package and by
// the algorithm packages for their source arguments.
// Complexity: O(1)
func (g *Graph) Validate(v int) error {
	return g.validate("Validate", v)
}

func (g *Graph) validate(op string, v int) error {
	if v < 0 || v >= g.n {
		return &VertexError{Op: op, Vertex: v, Count: g.n}
	}

	return nil
}

// VertexCount returns n, the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// AddEdge appends the undirected edge u—v with weight w: a record (v, w) to
// u's list and a record (u, w) to v's list. Parallel edges are never merged,
// and a self-loop adds both records to the same list.
//
// Returns a *VertexError (ErrInvalidVertex) if either endpoint is out of range;
// the graph is left untouched in that case.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if err := g.validate("AddEdge", u); err != nil {
		return err
	}
	if err := g.validate("AddEdge", v); err != nil {
		return err
	}

	g.adj[u] = append(g.adj[u], Neighbor{Vertex: v, Weight: w})
	g.adj[v] = append(g.adj[v], Neighbor{Vertex: u, Weight: w})

	return nil
}

// AddDirectedEdge appends a single record (v, w) to u's list and leaves v's
// list unmodified. Shortest-path trees use it to encode parent→child edges.
// Complexity: O(1) amortized.
func (g *Graph) AddDirectedEdge(u, v int, w int64) error {
	if err := g.validate("AddDirectedEdge", u); err != nil {
		return err
	}
	if err := g.validate("AddDirectedEdge", v); err != nil {
		return err
	}

	g.adj[u] = append(g.adj[u], Neighbor{Vertex: v, Weight: w})

	return nil
}

// RemoveEdge deletes the first u→v record from u's list and the first v→u
// record from v's list. If u has no record for v the call is a no-op and
// returns nil; a missing edge is not an error.
//
// On a directed tree only the u→v side exists, so only that side is removed.
// Complexity: O(deg(u) + deg(v))
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.validate("RemoveEdge", u); err != nil {
		return err
	}
	if err := g.validate("RemoveEdge", v); err != nil {
		return err
	}

	var ok bool
	if g.adj[u], ok = removeFirst(g.adj[u], v); !ok {
		return nil
	}
	g.adj[v], _ = removeFirst(g.adj[v], u)

	return nil
}

// removeFirst drops the first record pointing at target, preserving order.
func removeFirst(list []Neighbor, target int) ([]Neighbor, bool) {
	i := slices.IndexFunc(list, func(nb Neighbor) bool { return nb.Vertex == target })
	if i < 0 {
		return list, false
	}

	return slices.Delete(list, i, i+1), true
}

// Neighbors returns the live neighbor records of v.
//
// The returned slice aliases g's storage: it must be treated as read-only, and
// it may be invalidated by the next AddEdge or RemoveEdge touching v.
// Complexity: O(1)
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if err := g.validate("Neighbors", v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}
