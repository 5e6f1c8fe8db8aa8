// SPDX-License-Identifier: MIT
// Package: lvlgraph/builder
//
// impl_wheel.go - Wheel(n): hub 0 plus a rim cycle on 1..n-1.
//
// Emission order: spokes 0—i for i ascending, then rim edges i—(i+1), then
// the closing rim edge (n-1)—1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n with hub 0.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodWheel, g, cfg, centerVertex, i); err != nil {
				return err
			}
		}
		for i := 1; i < n-1; i++ {
			if err := addEdge(methodWheel, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return addEdge(methodWheel, g, cfg, n-1, 1)
	}
}
