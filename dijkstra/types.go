package dijkstra

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlgraph/pqueue"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative record was examined.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero or negative,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// EdgeError reports the offending record of an ErrNegativeWeight failure.
type EdgeError struct {
	From   int
	To     int
	Weight int64
}

// Error implements the error interface.
func (e *EdgeError) Error() string {
	return fmt.Sprintf("%s: %d→%d has weight %d", ErrNegativeWeight, e.From, e.To, e.Weight)
}

// Unwrap exposes ErrNegativeWeight to errors.Is.
func (e *EdgeError) Unwrap() error { return ErrNegativeWeight }

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices farther than this are left unreached.
// InfEdgeThreshold – records with weight ≥ this threshold are skipped.
type Options struct {
	Logger           zerolog.Logger
	MaxDistance      int64
	InfEdgeThreshold int64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns silent logging with no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		Logger:           zerolog.Nop(),
		MaxDistance:      pqueue.Infinity,
		InfEdgeThreshold: pqueue.Infinity,
	}
}

// WithLogger routes run events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxDistance stops settling vertices once the closest remaining one is
// farther than max. A negative max yields ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats records with weight ≥ threshold as walls.
// A threshold ≤ 0 yields ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)

			return
		}
		o.InfEdgeThreshold = threshold
	}
}
