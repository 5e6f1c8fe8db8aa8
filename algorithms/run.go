package algorithms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlgraph/bfs"
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
	"github.com/katalvlaran/lvlgraph/dijkstra"
	"github.com/katalvlaran/lvlgraph/metrics"
	"github.com/katalvlaran/lvlgraph/prim_kruskal"
)

// ErrUnknownMethod is returned for a method name Run does not know.
var ErrUnknownMethod = errors.New("algorithms: unknown method")

// Method names one tree-building algorithm.
type Method string

// Supported methods.
const (
	MethodBFS      Method = "bfs"
	MethodDFS      Method = "dfs"
	MethodDijkstra Method = "dijkstra"
	MethodPrim     Method = prim_kruskal.MethodPrim
	MethodKruskal  Method = prim_kruskal.MethodKruskal
)

// Methods lists every supported method in a stable order.
func Methods() []Method {
	return []Method{MethodBFS, MethodDFS, MethodDijkstra, MethodPrim, MethodKruskal}
}

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if !m.known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}

	return m, nil
}

func (m Method) known() bool {
	for _, k := range Methods() {
		if m == k {
			return true
		}
	}

	return false
}

// Run executes method m on g and logs through logger.
//
// source is the start vertex for bfs, dfs and dijkstra, and the root for
// prim; kruskal ignores it.
//
// Every known method updates the collectors in package metrics: one run
// count per outcome, the run duration, and on success the tree's weight and
// edge count. Unknown methods are rejected before anything is recorded.
func Run(g *core.Graph, m Method, source int, logger zerolog.Logger) (*core.Graph, error) {
	if !m.known() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}

	start := time.Now()
	tree, err := dispatch(g, m, source, logger)
	metrics.AlgorithmDurationSeconds.WithLabelValues(string(m)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AlgorithmRunsTotal.WithLabelValues(string(m), metrics.StatusError).Inc()

		return nil, fmt.Errorf("algorithms: %s: %w", m, err)
	}
	metrics.AlgorithmRunsTotal.WithLabelValues(string(m), metrics.StatusOK).Inc()
	metrics.TreeWeight.WithLabelValues(string(m)).Set(float64(TreeWeight(m, tree)))
	metrics.TreeEdges.WithLabelValues(string(m)).Set(float64(treeEdges(m, tree)))

	return tree, nil
}

// TreeWeight sums the edges of a tree returned by Run. Dijkstra trees are
// directed, so each edge is one record; the others hold two records per edge.
func TreeWeight(m Method, tree *core.Graph) int64 {
	if m == MethodDijkstra {
		return tree.TotalWeight()
	}

	return tree.TotalWeight() / 2
}

func treeEdges(m Method, tree *core.Graph) int {
	if m == MethodDijkstra {
		return tree.EdgeCount()
	}

	return tree.EdgeCount() / 2
}

func dispatch(g *core.Graph, m Method, source int, logger zerolog.Logger) (*core.Graph, error) {
	var (
		tree *core.Graph
		err  error
	)
	switch m {
	case MethodBFS:
		tree, err = bfs.BFS(g, source, bfs.WithLogger(logger))
	case MethodDFS:
		tree, err = dfs.DFS(g, source, dfs.WithLogger(logger))
	case MethodDijkstra:
		tree, err = dijkstra.Dijkstra(g, source, dijkstra.WithLogger(logger))
	case MethodPrim:
		tree, err = prim_kruskal.Prim(g, prim_kruskal.WithRoot(source), prim_kruskal.WithLogger(logger))
	case MethodKruskal:
		tree, err = prim_kruskal.Kruskal(g, prim_kruskal.WithLogger(logger))
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}

	return tree, err
}
