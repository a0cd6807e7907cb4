// Pruning: strip non-terminal leaves from a tree until every remaining
// leaf is required.
package steiner

import (
	"github.com/bendico765/heuristic-steiner-tree/core"
)

// Prune removes degree-1 vertices that are not terminals, repeatedly,
// until no removable leaf remains. The input is not mutated; the pruned
// copy is returned.
//
// Each removal strictly decreases the vertex count, so the fixed point
// is reached in at most |V|−1 steps. When tree really is a tree,
// removing a non-terminal leaf keeps it connected and acyclic and never
// separates two terminals, so the invariants of the final result hold
// at every intermediate step as well.
//
// The worklist is seeded with the current leaves in ascending ID order
// and a removed leaf's neighbor is re-examined immediately: pruning one
// leaf may expose its neighbor as the next removable leaf.
//
// Complexity: O(V log V) for the seed scan, O(1) amortized per removal.
func Prune(tree *core.Graph, terminals []string) (*core.Graph, error) {
	if tree == nil {
		return nil, ErrNilGraph
	}

	required := make(map[string]struct{}, len(terminals))
	for _, t := range terminals {
		required[t] = struct{}{}
	}

	out := tree.Clone()

	// Seed: every current non-terminal leaf. Vertices() is sorted, so
	// the removal order is deterministic.
	var worklist []string
	for _, id := range out.Vertices() {
		if _, isTerminal := required[id]; isTerminal {
			continue
		}
		deg, err := out.Degree(id)
		if err != nil {
			return nil, err
		}
		if deg == 1 {
			worklist = append(worklist, id)
		}
	}

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		// The vertex may have changed since it was scheduled; only a
		// still-present, still-degree-1 vertex is a removable leaf.
		deg, err := out.Degree(id)
		if err != nil || deg != 1 {
			continue
		}

		nbs, err := out.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		nb := nbs[0]

		if err := out.RemoveVertex(id); err != nil {
			return nil, err
		}

		// The neighbor may have just become a removable leaf itself.
		if _, isTerminal := required[nb]; !isTerminal {
			if deg, err = out.Degree(nb); err == nil && deg == 1 {
				worklist = append(worklist, nb)
			}
		}
	}

	return out, nil
}
