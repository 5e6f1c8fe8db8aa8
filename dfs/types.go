package dfs

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures DFS behavior.
type Option func(*Options)

// Options holds the hooks and the logger used by DFS.
type Options struct {
	// Logger receives Debug events; defaults to zerolog.Nop().
	Logger zerolog.Logger

	// OnVisit is called when a vertex is discovered, with its tree depth.
	OnVisit func(v, depth int) error

	// OnExit is called once every descendant of v has been explored.
	OnExit func(v int) error
}

// DefaultOptions returns silent logging and no hooks.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger routes traversal events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnVisit sets a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit sets a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}
