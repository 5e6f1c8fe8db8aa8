// SPDX-License-Identifier: MIT
// Package: lvlgraph/builder
//
// impl_cycle.go - Cycle(n): the path 0—1—…—(n-1) closed by (n-1)—0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n on 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(methodCycle, g, cfg, n-1, 0)
	}
}
