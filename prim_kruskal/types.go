package prim_kruskal

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlgraph/core"
)

// ErrGraphNil indicates that a nil *core.Graph was passed.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod is returned by Compute for a Method other than
// MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use. Use DefaultOptions() to get a default setup
// (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Logger receives Debug events; defaults to zerolog.Nop().
	Logger zerolog.Logger

	// rootSet distinguishes an explicit WithRoot(0) from the default.
	rootSet bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.rootSet = true
	}
}

// WithLogger routes run events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, with Prim's
// root at vertex 0 and a silent logger.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
		Logger: zerolog.Nop(),
	}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: calls Kruskal(graph).
//	– MethodPrim:    calls Prim(graph) rooted at opts.Root.
//	– Otherwise:     returns ErrUnknownMethod.
//
// It returns the tree and its total weight (each undirected edge counted once).
func Compute(graph *core.Graph, opts MSTOptions) (*core.Graph, int64, error) {
	run := []Option{WithLogger(opts.Logger)}
	if opts.rootSet || opts.Root != 0 {
		run = append(run, WithRoot(opts.Root))
	}

	var (
		tree *core.Graph
		err  error
	)
	switch opts.Method {
	case MethodKruskal:
		tree, err = Kruskal(graph, run...)
	case MethodPrim:
		tree, err = Prim(graph, run...)
	default:
		return nil, 0, ErrUnknownMethod
	}
	if err != nil {
		return nil, 0, err
	}

	return tree, Weight(tree), nil
}

// Weight returns the total weight of an undirected tree built by this
// package: the record sum halved, since every edge is stored twice.
func Weight(tree *core.Graph) int64 {
	if tree == nil {
		return 0
	}

	return tree.TotalWeight() / 2
}
