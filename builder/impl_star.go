// SPDX-License-Identifier: MIT
// Package: lvlgraph/builder
//
// impl_star.go - Star(n): center 0 joined to leaves 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	centerVertex = 0
)

// Star returns a Constructor that builds the star S_n with center 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, centerVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
