// The orchestrator: validation, singleton short-circuit, and the five
// pipeline stages in sequence.
package steiner

import (
	"fmt"

	"github.com/bendico765/heuristic-steiner-tree/astar"
	"github.com/bendico765/heuristic-steiner-tree/core"
	"github.com/bendico765/heuristic-steiner-tree/mst"
)

// Approximate computes an approximate minimum-weight Steiner tree of g
// spanning all terminals, guided by the heuristic h.
//
// Returns a connected, acyclic, weighted subgraph of g containing every
// terminal. The result is a fresh graph owned by the caller; g itself
// is only read.
//
// Stages (after eager validation, see package doc):
//
//	closure → Kruskal → expansion → Kruskal → prune
//
// A single terminal short-circuits to the trivial one-vertex tree
// without running the pipeline.
//
// Errors:
//
//   - ErrInvalidInput and its wrapped sentinels for precondition
//     violations, detected before any search executes.
//   - astar.ErrUnreachableTarget, propagated unmodified, when two
//     terminals share no path; no partial tree is returned.
//   - ErrInternalConsistency when a pipeline invariant breaks (the
//     second spanning round must span the expanded subgraph).
//
// Complexity: see package doc; the t(t−1)/2 closure searches dominate.
func Approximate(g *core.Graph, h astar.Heuristic, terminals []string, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, h, terminals); err != nil {
		return nil, err
	}

	// Singleton terminal set: the tree is that single vertex, weight 0.
	if len(terminals) == 1 {
		out := g.CloneEmpty()
		if err := out.AddVertex(terminals[0]); err != nil {
			return nil, err
		}

		return out, nil
	}

	// Stage 1: metric closure over the terminals.
	closure, err := buildClosure(g, terminals, h, cfg)
	if err != nil {
		return nil, err
	}

	// Stage 2: spanning tree of the closure. The closure is complete,
	// hence connected; Kruskal returns a single tree here.
	closureTree, _, err := mst.Kruskal(closure.Graph())
	if err != nil {
		return nil, fmt.Errorf("%w: closure spanning round: %v", ErrInternalConsistency, err)
	}

	// Stage 3: expand abstract closure edges into concrete paths.
	expanded, err := Expand(g, closure, closureTree)
	if err != nil {
		return nil, err
	}

	// Stage 4: spanning tree of the expanded subgraph. The expansion is
	// a union of paths between terminals of one closure tree, so it
	// must be connected; anything less is a defect in the stages above.
	spanning, _, err := mst.Kruskal(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w: expanded spanning round: %v", ErrInternalConsistency, err)
	}
	if len(spanning) != expanded.VertexCount()-1 {
		return nil, fmt.Errorf("%w: second spanning round yielded a forest (%d edges over %d vertices)",
			ErrInternalConsistency, len(spanning), expanded.VertexCount())
	}

	// Materialize the spanning edges as a graph for the prune stage.
	tree := expanded.CloneEmpty()
	for _, e := range spanning {
		if err = tree.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	// Stage 5: strip non-terminal leaves.
	return Prune(tree, terminals)
}
