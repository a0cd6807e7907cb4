// Complete(n): the complete graph K_n.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Decimal vertex IDs; edges in lexicographic index order (i, j)
//     for i < j.
//
// Complexity: O(n²).
package builder

import (
	"fmt"
	"strconv"

	"github.com/bendico765/heuristic-steiner-tree/core"
)

const (
	methodComplete  = "Complete"
	minCompleteSize = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteSize {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", methodComplete, n, minCompleteSize, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(strconv.Itoa(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodComplete, i, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := strconv.Itoa(i), strconv.Itoa(j)
				if err := g.AddEdge(u, v, edgeWeight(g, cfg)); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodComplete, u, v, err)
				}
			}
		}

		return nil
	}
}
