// File: methods_clone.go
// Role: deep copies of Graph instances.

package core

// Clone returns a deep copy of g: same vertex count, same records in the
// same order. Mutating either graph afterwards never affects the other.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph(g.n)
	for v, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		clone.adj[v] = make([]Neighbor, len(list))
		copy(clone.adj[v], list)
	}

	return clone
}
