// Command graphdemo builds a small weighted graph from the environment, runs
// every tree-building algorithm on it and prints each result.
//
// Configuration comes from GRAPHDEMO_* variables, optionally seeded from a
// .env file in the working directory:
//
//	GRAPHDEMO_VERTICES=5
//	GRAPHDEMO_EDGES=0-1:4,0-2:1,1-2:2,1-3:5,2-3:8,3-4:3
//	GRAPHDEMO_PRESET=            # path|cycle|complete|star|wheel|grid:RxC|random:P, replaces EDGES
//	GRAPHDEMO_SEED=1             # preset weights and random topology
//	GRAPHDEMO_MAX_WEIGHT=9       # preset weights are uniform in [1, MAX_WEIGHT]
//	GRAPHDEMO_METRICS=false      # log the lvlgraph_* Prometheus series after the run
//	GRAPHDEMO_SOURCE=0          # bfs, dfs, dijkstra
//	GRAPHDEMO_ROOT=0            # prim
//	GRAPHDEMO_METHODS=bfs,dfs,dijkstra,prim,kruskal
//	GRAPHDEMO_REMOVE=1-2        # empty to skip
//	GRAPHDEMO_LOG_LEVEL=info
//	GRAPHDEMO_LOG_FORMAT=console
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlgraph/algorithms"
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/metrics"
)

const separator = "------------------------\n"

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "graphdemo: config:", err)
		os.Exit(2)
	}
	logger := NewLogger(cfg, os.Stderr)

	if err = run(cfg, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("graphdemo failed")
		os.Exit(1)
	}
}

// NewLogger builds the zerolog logger described by cfg.
func NewLogger(cfg *Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).With().Timestamp().Str("component", "graphdemo").Logger().Level(level)
}

// run drives the demo and writes every dump to out.
func run(cfg *Config, out io.Writer, logger zerolog.Logger) error {
	g, err := BuildGraph(cfg)
	if err != nil {
		return err
	}
	logger.Info().Int("vertices", g.VertexCount()).Int("records", g.EdgeCount()).Msg("graph built")

	if err = dump(out, "Original Graph:", g); err != nil {
		return err
	}

	for _, name := range cfg.Methods {
		m, err := algorithms.ParseMethod(name)
		if err != nil {
			return err
		}
		start := cfg.Source
		if m == algorithms.MethodPrim {
			start = cfg.Root
		}

		tree, err := algorithms.Run(g, m, start, logger)
		if err != nil {
			// one failing algorithm does not stop the others
			logger.Warn().Err(err).Str("method", string(m)).Msg("algorithm failed")
			if _, werr := fmt.Fprintf(out, "%s: error: %v\n%s", title(m, start), err, separator); werr != nil {
				return werr
			}
			continue
		}
		logger.Info().Str("method", string(m)).Int64("weight", algorithms.TreeWeight(m, tree)).Msg("tree built")
		if err = dump(out, title(m, start)+":", tree); err != nil {
			return err
		}
	}

	if cfg.Metrics {
		if err = logMetrics(logger); err != nil {
			return err
		}
	}

	u, v, ok, err := ParseRemove(cfg.Remove)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err = g.RemoveEdge(u, v); err != nil {
		return err
	}

	return dump(out, fmt.Sprintf("Removing edge (%d, %d):", u, v), g)
}

func title(m algorithms.Method, start int) string {
	switch m {
	case algorithms.MethodBFS:
		return fmt.Sprintf("BFS Tree from vertex %d", start)
	case algorithms.MethodDFS:
		return fmt.Sprintf("DFS Tree from vertex %d", start)
	case algorithms.MethodDijkstra:
		return fmt.Sprintf("Dijkstra Tree from vertex %d", start)
	case algorithms.MethodPrim:
		return "Prim's MST"
	default:
		return "Kruskal's MST"
	}
}

func dump(out io.Writer, header string, g *core.Graph) error {
	if _, err := fmt.Fprintln(out, header); err != nil {
		return err
	}
	if _, err := g.WriteTo(out); err != nil {
		return err
	}
	_, err := io.WriteString(out, separator)

	return err
}

// logMetrics writes one Info event per lvlgraph_* series, sorted by key.
func logMetrics(logger zerolog.Logger) error {
	snap, err := metrics.Snapshot(prometheus.DefaultGatherer)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		logger.Info().Str("series", k).Float64("value", snap[k]).Msg("metric")
	}

	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
