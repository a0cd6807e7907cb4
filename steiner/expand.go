// Expansion: replace each abstract closure edge selected by the first
// spanning round with its concrete path in the original graph.
package steiner

import (
	"fmt"

	"github.com/bendico765/heuristic-steiner-tree/core"
)

// Expand builds the union of the concrete paths behind treeEdges, a set
// of closure edges (normally the first spanning round's output). Every
// path vertex and every consecutive-vertex edge is inserted into a
// fresh subgraph, with weights copied from the original graph.
// Insertion is idempotent: paths may share vertices and edges, and the
// result holds each at most once. The output contains exactly the
// union of the selected paths, nothing else.
//
// Errors:
//   - ErrNilGraph / ErrInvalidInput  : original or closure is nil.
//   - ErrInternalConsistency         : a tree edge has no stored path,
//     or a path traverses an edge absent from the original graph.
//     Either means the closure and the tree disagree, which a correct
//     pipeline never produces.
//
// Complexity: O(Σ path lengths).
func Expand(original *core.Graph, closure *Closure, treeEdges []core.Edge) (*core.Graph, error) {
	if original == nil {
		return nil, ErrNilGraph
	}
	if closure == nil {
		return nil, fmt.Errorf("%w: closure is nil", ErrInvalidInput)
	}

	out := original.CloneEmpty()
	for _, te := range treeEdges {
		path, ok := closure.Path(te.From, te.To)
		if !ok {
			return nil, fmt.Errorf("%w: closure has no path for %s-%s", ErrInternalConsistency, te.From, te.To)
		}

		// A retained path always carries both endpoints, so walking the
		// consecutive pairs inserts every vertex of the path.
		for i := 1; i < len(path.Vertices); i++ {
			u, v := path.Vertices[i-1], path.Vertices[i]
			w, err := original.EdgeWeight(u, v)
			if err != nil {
				return nil, fmt.Errorf("%w: path edge %s-%s missing from source graph", ErrInternalConsistency, u, v)
			}
			if err := out.AddEdge(u, v, w); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
