// Grid(rows, cols): a 2D orthogonal grid with 4-neighborhood.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertices added in row-major order with IDs "r,c".
//   - Edges to the right (r,c+1) and bottom (r+1,c) neighbors where
//     they exist; stable edge order: per cell, Right then Bottom.
//
// Complexity: O(rows·cols).
package builder

import (
	"fmt"

	"github.com/bendico765/heuristic-steiner-tree/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c", the documented coordinate ID scheme
)

// GridID returns the vertex ID of cell (r, c), the same "r,c" scheme
// Grid emits. Tests use it to address corners and centers.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// Vertices in deterministic row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		// Edges: per cell, Right then Bottom.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					v := GridID(r, c+1)
					if err := g.AddEdge(u, v, edgeWeight(g, cfg)); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodGrid, u, v, err)
					}
				}
				if r+1 < rows {
					v := GridID(r+1, c)
					if err := g.AddEdge(u, v, edgeWeight(g, cfg)); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodGrid, u, v, err)
					}
				}
			}
		}

		return nil
	}
}
