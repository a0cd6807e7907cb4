// PathLine(n): a simple path 0-1-...-(n-1).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n == 1 is a single vertex.
//   - Decimal vertex IDs "0".."n-1", edges in index order.
//
// Complexity: O(n).
package builder

import (
	"fmt"
	"strconv"

	"github.com/bendico765/heuristic-steiner-tree/core"
)

const (
	methodPath  = "PathLine"
	minPathSize = 1
)

// PathLine returns a Constructor that builds a path graph on n vertices.
// Named PathLine rather than Path to keep the topology distinct from
// astar.Path, the walk result type.
func PathLine(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathSize {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", methodPath, n, minPathSize, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(strconv.Itoa(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodPath, i, err)
			}
		}
		for i := 1; i < n; i++ {
			u, v := strconv.Itoa(i-1), strconv.Itoa(i)
			if err := g.AddEdge(u, v, edgeWeight(g, cfg)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
