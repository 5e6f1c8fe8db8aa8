package core

// HasEdge reports whether u's list holds at least one record pointing at v.
// Out-of-range indices yield false.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.EdgeWeight(u, v)

	return ok
}

// EdgeWeight returns the weight of the first u→v record.
// The boolean is false when no such record exists or an index is out of range.
func (g *Graph) EdgeWeight(u, v int) (int64, bool) {
	if g.validate("EdgeWeight", u) != nil || g.validate("EdgeWeight", v) != nil {
		return 0, false
	}
	for _, nb := range g.adj[u] {
		if nb.Vertex == v {
			return nb.Weight, true
		}
	}

	return 0, false
}

// Edges flattens every neighbor record into an Edge, ordered by owning
// vertex and then by record position.
// Note: an undirected edge appears twice (once per direction); a directed
// record appears once.
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for u, list := range g.adj {
		for _, nb := range list {
			out = append(out, Edge{From: u, To: nb.Vertex, Weight: nb.Weight})
		}
	}

	return out
}

// EdgeCount returns the number of neighbor records across all vertices.
// For a graph built only with AddEdge this is twice the number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, list := range g.adj {
		total += len(list)
	}

	return total
}

// TotalWeight sums the weights of all neighbor records.
// Halve it for graphs built with AddEdge; use it as-is for directed trees.
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, list := range g.adj {
		for _, nb := range list {
			total += nb.Weight
		}
	}

	return total
}
