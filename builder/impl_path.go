// SPDX-License-Identifier: MIT
// Package: lvlgraph/builder
//
// impl_path.go - Path(n): edges (i-1)—i for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n on 0..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
