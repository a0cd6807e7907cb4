// Cycle(n): a simple cycle 0-1-...-(n-1)-0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices): smaller rings would need loops
//     or parallel edges, which the core rejects.
//   - Decimal vertex IDs, edges in index order, closing edge last.
//
// Complexity: O(n).
package builder

import (
	"fmt"
	"strconv"

	"github.com/bendico765/heuristic-steiner-tree/core"
)

const (
	methodCycle  = "Cycle"
	minCycleSize = 3
)

// Cycle returns a Constructor that builds a cycle graph on n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleSize {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", methodCycle, n, minCycleSize, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(strconv.Itoa(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodCycle, i, err)
			}
		}
		for i := 1; i < n; i++ {
			u, v := strconv.Itoa(i-1), strconv.Itoa(i)
			if err := g.AddEdge(u, v, edgeWeight(g, cfg)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, u, v, err)
			}
		}
		// Closing edge.
		u, v := strconv.Itoa(n-1), strconv.Itoa(0)
		if err := g.AddEdge(u, v, edgeWeight(g, cfg)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, u, v, err)
		}

		return nil
	}
}
