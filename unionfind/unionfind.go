// Package unionfind implements a disjoint-set forest over the integers
// 0..n-1 with path compression and union by rank.
//
// Kruskal uses it to reject edges that would close a cycle. Find, Unite and
// Connected run in amortized O(α(n)).
package unionfind

// UnionFind is a disjoint-set forest. The zero value is an empty forest.
type UnionFind struct {
	parent []int
	rank   []int
	size   []int
	count  int
}

// New returns n singleton sets {0}, {1}, ..., {n-1}.
// A negative n is treated as 0.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Find returns the representative of x's set and points every node on the
// walked path directly at it.
// x must be in [0, n); callers own the range check.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// second pass: compress
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Unite merges the sets containing x and y. The root of lower rank is
// attached under the other; on a tie y's root goes under x's root and the
// surviving rank grows by one.
// It returns false when x and y were already in the same set.
func (uf *UnionFind) Unite(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case uf.rank[rx] < uf.rank[ry]:
		rx, ry = ry, rx
	case uf.rank[rx] == uf.rank[ry]:
		uf.rank[rx]++
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	uf.count--

	return true
}

// Connected reports whether x and y share a representative.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Size returns the number of elements in x's set.
func (uf *UnionFind) Size(x int) int { return uf.size[uf.Find(x)] }

// Len returns n, the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }
