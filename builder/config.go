// SPDX-License-Identifier: MIT
// Package: lvlgraph/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	// last-wins
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
