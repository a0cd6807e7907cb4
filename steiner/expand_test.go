package steiner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bendico765/heuristic-steiner-tree/astar"
	"github.com/bendico765/heuristic-steiner-tree/builder"
	"github.com/bendico765/heuristic-steiner-tree/core"
	"github.com/bendico765/heuristic-steiner-tree/mst"
	"github.com/bendico765/heuristic-steiner-tree/steiner"
)

func TestExpand_SinglePair(t *testing.T) {
	// Line 0-1-2-3 with weight 2 per edge; the closure edge (0,3)
	// expands back into the full line.
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.PathLine(4),
	)
	require.NoError(t, err)

	c, err := steiner.BuildClosure(g, astar.Zero(), []string{"0", "3"})
	require.NoError(t, err)
	tree, _, err := mst.Kruskal(c.Graph())
	require.NoError(t, err)

	expanded, err := steiner.Expand(g, c, tree)
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3"}, expanded.Vertices())
	assert.Equal(t, 3, expanded.EdgeCount())
	// Weights come from the source graph, not from the closure.
	w, err := expanded.EdgeWeight("1", "2")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

// Overlapping paths collapse: inserting shared vertices and edges twice
// must not duplicate anything.
func TestExpand_OverlappingPathsIdempotent(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(1)},
		builder.PathLine(5),
	)
	require.NoError(t, err)

	c, err := steiner.BuildClosure(g, astar.Zero(), []string{"0", "2", "4"})
	require.NoError(t, err)

	// Feed every closure edge, not just a spanning tree: the paths
	// 0→2, 2→4 and 0→4 overlap completely on the line.
	expanded, err := steiner.Expand(g, c, edgeValues(c.Graph().Edges()))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, expanded.Vertices())
	assert.Equal(t, 4, expanded.EdgeCount())
}

// The expansion contains exactly the union of the selected paths and
// nothing else.
func TestExpand_NothingBeyondSelectedPaths(t *testing.T) {
	g := unitGrid(t, 3, 3)
	terminals := []string{"0,0", "0,2", "2,0", "2,2"}

	c, err := steiner.BuildClosure(g, astar.HeuristicFunc(taxicab), terminals)
	require.NoError(t, err)
	tree, _, err := mst.Kruskal(c.Graph())
	require.NoError(t, err)

	expanded, err := steiner.Expand(g, c, tree)
	require.NoError(t, err)

	// Rebuild the expected union directly from the stored paths.
	wantVertices := make(map[string]struct{})
	wantEdges := 0
	seen := make(map[[2]string]struct{})
	for _, te := range tree {
		path, ok := c.Path(te.From, te.To)
		require.True(t, ok)
		for i, v := range path.Vertices {
			wantVertices[v] = struct{}{}
			if i == 0 {
				continue
			}
			u := path.Vertices[i-1]
			key := [2]string{u, v}
			if v < u {
				key = [2]string{v, u}
			}
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				wantEdges++
			}
		}
	}

	assert.Equal(t, len(wantVertices), expanded.VertexCount())
	assert.Equal(t, wantEdges, expanded.EdgeCount())
	for v := range wantVertices {
		assert.True(t, expanded.HasVertex(v))
	}
}

func TestExpand_Validation(t *testing.T) {
	g := unitGrid(t, 2, 2)
	c, err := steiner.BuildClosure(g, astar.Zero(), []string{"0,0", "1,1"})
	require.NoError(t, err)

	_, err = steiner.Expand(nil, c, nil)
	assert.ErrorIs(t, err, steiner.ErrNilGraph)

	_, err = steiner.Expand(g, nil, nil)
	assert.ErrorIs(t, err, steiner.ErrInvalidInput)
}

func TestExpand_UnknownTreeEdge(t *testing.T) {
	g := unitGrid(t, 2, 2)
	c, err := steiner.BuildClosure(g, astar.Zero(), []string{"0,0", "1,1"})
	require.NoError(t, err)

	// An edge the closure never computed: the pipeline invariant broke.
	bogus := []core.Edge{{From: "0,0", To: "0,1"}}
	_, err = steiner.Expand(g, c, bogus)
	assert.ErrorIs(t, err, steiner.ErrInternalConsistency)
}

// edgeValues converts the []*core.Edge of Graph.Edges() into the edge
// value slice the spanning/expansion APIs exchange.
func edgeValues(edges []*core.Edge) []core.Edge {
	out := make([]core.Edge, len(edges))
	for i, e := range edges {
		out[i] = *e
	}

	return out
}
