package bfs

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Logger receives Debug events; defaults to zerolog.Nop().
	Logger zerolog.Logger

	// OnVisit is called for each dequeued vertex with its hop depth.
	// Returning an error aborts the traversal.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops discovery beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns silent logging, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:  zerolog.Nop(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithLogger routes traversal events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnVisit registers a callback run on every dequeued vertex.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to d hops from the source.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}
