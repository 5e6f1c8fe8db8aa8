// SPDX-License-Identifier: MIT
// Package builder provides deterministic constructors for common topologies
// on a fixed-size core.Graph: paths, cycles, complete graphs, stars, wheels,
// grids and seeded random graphs.
//
// Usage:
//
//	g, err := builder.BuildGraph(6,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.Cycle(6),
//	)
//
// Every constructor of size k wires vertices 0..k-1 of the graph; several
// constructors may be composed on one graph and run in call order. Weights
// come from the configured WeightFn (constant 1 by default).
//
// Determinism: the same n, options, seed and constructor order always yield
// an identical graph, including the order of neighbor records.
//
// Errors: constructors return the sentinels in errors.go wrapped with %w;
// endpoint range failures surface as core.ErrInvalidVertex.
package builder
