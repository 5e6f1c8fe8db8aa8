// SPDX-License-Identifier: MIT
// Package: lvlgraph/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice.
//
// Cell (r, c) is vertex r*cols + c. For each cell in row-major order the
// right edge is emitted before the down edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice on
// 0..rows*cols-1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
