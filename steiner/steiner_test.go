// Package steiner_test exercises the full approximation pipeline:
// input validation, the reference scenarios, structural properties of
// the output (tree shape, terminal containment), determinism, and the
// (2 − 2/t) approximation bound checked against brute force.
package steiner_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bendico765/heuristic-steiner-tree/astar"
	"github.com/bendico765/heuristic-steiner-tree/builder"
	"github.com/bendico765/heuristic-steiner-tree/core"
	"github.com/bendico765/heuristic-steiner-tree/mst"
	"github.com/bendico765/heuristic-steiner-tree/steiner"
)

// taxicab is the Manhattan distance between two "r,c" grid IDs,
// admissible on unit-weight grids.
func taxicab(u, v string) float64 {
	ur, uc := cellOf(u)
	vr, vc := cellOf(v)
	dr, dc := ur-vr, uc-vc
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return float64(dr + dc)
}

func cellOf(id string) (int, int) {
	parts := strings.SplitN(id, ",", 2)
	r, _ := strconv.Atoi(parts[0])
	c, _ := strconv.Atoi(parts[1])

	return r, c
}

func unitGrid(t *testing.T, rows, cols int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(1)},
		builder.Grid(rows, cols),
	)
	require.NoError(t, err)

	return g
}

// isTree reports whether g is connected and acyclic.
func isTree(g *core.Graph) bool {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return false
	}
	if g.EdgeCount() != len(vertices)-1 {
		return false
	}

	return countReachable(g, vertices[0]) == len(vertices)
}

// countReachable walks g breadth-first from start.
func countReachable(g *core.Graph, start string) int {
	adj := g.AdjacencyList()
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(seen)
}

// optimalSteinerWeight finds the exact optimum by enumerating every
// subset of non-terminal vertices and taking the best spanning tree of
// the induced subgraph. Exponential; only for tiny fixtures.
func optimalSteinerWeight(t *testing.T, g *core.Graph, terminals []string) float64 {
	t.Helper()

	termSet := make(map[string]struct{}, len(terminals))
	for _, term := range terminals {
		termSet[term] = struct{}{}
	}
	var others []string
	for _, id := range g.Vertices() {
		if _, ok := termSet[id]; !ok {
			others = append(others, id)
		}
	}
	require.LessOrEqual(t, len(others), 16, "brute force fixture too large")

	best := -1.0
	for mask := 0; mask < 1<<len(others); mask++ {
		chosen := make(map[string]struct{}, len(terminals))
		for _, term := range terminals {
			chosen[term] = struct{}{}
		}
		for i, id := range others {
			if mask&(1<<i) != 0 {
				chosen[id] = struct{}{}
			}
		}

		// Induced subgraph over the chosen vertex set.
		sub := core.NewGraph(core.WithWeighted())
		for id := range chosen {
			require.NoError(t, sub.AddVertex(id))
		}
		for _, e := range g.Edges() {
			if _, uOK := chosen[e.From]; !uOK {
				continue
			}
			if _, vOK := chosen[e.To]; !vOK {
				continue
			}
			require.NoError(t, sub.AddEdge(e.From, e.To, e.Weight))
		}

		edges, total, err := mst.Kruskal(sub)
		require.NoError(t, err)
		if len(edges) != len(chosen)-1 {
			continue // not connected with this vertex choice
		}
		if best < 0 || total < best {
			best = total
		}
	}
	require.GreaterOrEqual(t, best, 0.0, "no connected Steiner candidate found")

	return best
}

// ------------------------------------------------------------------
// 1. Validation (all detected before any search executes).
// ------------------------------------------------------------------

func TestApproximate_NilGraph(t *testing.T) {
	_, err := steiner.Approximate(nil, astar.Zero(), []string{"A"})
	assert.ErrorIs(t, err, steiner.ErrNilGraph)
	assert.ErrorIs(t, err, steiner.ErrInvalidInput)
}

func TestApproximate_NilHeuristic(t *testing.T) {
	g := unitGrid(t, 2, 2)
	_, err := steiner.Approximate(g, nil, []string{"0,0"})
	assert.ErrorIs(t, err, steiner.ErrNilHeuristic)
	assert.ErrorIs(t, err, steiner.ErrInvalidInput)
}

func TestApproximate_UnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err := steiner.Approximate(g, astar.Zero(), []string{"A"})
	assert.ErrorIs(t, err, steiner.ErrUnweightedGraph)
}

func TestApproximate_EmptyTerminals(t *testing.T) {
	g := unitGrid(t, 2, 2)
	_, err := steiner.Approximate(g, astar.Zero(), nil)
	assert.ErrorIs(t, err, steiner.ErrNoTerminals)
	assert.ErrorIs(t, err, steiner.ErrInvalidInput)
}

func TestApproximate_DuplicateTerminal(t *testing.T) {
	g := unitGrid(t, 2, 2)
	_, err := steiner.Approximate(g, astar.Zero(), []string{"0,0", "1,1", "0,0"})
	assert.ErrorIs(t, err, steiner.ErrDuplicateTerminal)
	assert.Contains(t, err.Error(), `"0,0"`)
}

// Scenario: a terminal absent from the graph fails before any search.
func TestApproximate_TerminalNotFound(t *testing.T) {
	g := unitGrid(t, 2, 2)
	_, err := steiner.Approximate(g, astar.Zero(), []string{"0,0", "9,9"})
	assert.ErrorIs(t, err, steiner.ErrTerminalNotFound)
	assert.ErrorIs(t, err, steiner.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"9,9"`)
}

func TestApproximate_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", -2))
	_, err := steiner.Approximate(g, astar.Zero(), []string{"A", "C"})
	assert.ErrorIs(t, err, steiner.ErrNegativeWeight)
	assert.ErrorIs(t, err, steiner.ErrInvalidInput)
}

// ------------------------------------------------------------------
// 2. Reference scenarios.
// ------------------------------------------------------------------

// Scenario: singleton terminal set short-circuits to the trivial
// one-vertex tree of weight 0.
func TestApproximate_SingleTerminal(t *testing.T) {
	g := unitGrid(t, 3, 3)
	tree, err := steiner.Approximate(g, astar.HeuristicFunc(taxicab), []string{builder.GridID(1, 1)})
	require.NoError(t, err)

	assert.Equal(t, []string{"1,1"}, tree.Vertices())
	assert.Zero(t, tree.EdgeCount())
	assert.Zero(t, tree.TotalWeight())
}

// Scenario: two terminals joined by a unique path in a line graph; the
// result is exactly that path.
func TestApproximate_LineGraph(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.PathLine(6),
	)
	require.NoError(t, err)

	tree, err := steiner.Approximate(g, astar.Zero(), []string{"1", "4"})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4"}, tree.Vertices())
	assert.Equal(t, 3, tree.EdgeCount())
	assert.Equal(t, 6.0, tree.TotalWeight())
	assert.True(t, isTree(tree))
}

// Scenario: the four corners of a 3×3 unit grid. Any tree touching all
// corners weighs at least 6 (each corner is two hops from the nearest
// other corner), and 6 is attainable, so the approximation must return
// the exact optimum here.
func TestApproximate_GridCorners(t *testing.T) {
	g := unitGrid(t, 3, 3)
	terminals := []string{
		builder.GridID(0, 0), builder.GridID(0, 2),
		builder.GridID(2, 0), builder.GridID(2, 2),
	}

	tree, err := steiner.Approximate(g, astar.HeuristicFunc(taxicab), terminals)
	require.NoError(t, err)

	assert.True(t, isTree(tree))
	for _, term := range terminals {
		assert.True(t, tree.HasVertex(term), "terminal %s missing", term)
	}
	assert.Equal(t, 6.0, tree.TotalWeight())
	assert.Equal(t, 6.0, optimalSteinerWeight(t, g, terminals))
}

// Scenario: terminals in different components abort the run with the
// path finder's sentinel and no partial tree.
func TestApproximate_DisconnectedTerminals(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	tree, err := steiner.Approximate(g, astar.Zero(), []string{"A", "D"})
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, astar.ErrUnreachableTarget)
}

// ------------------------------------------------------------------
// 3. Structural properties.
// ------------------------------------------------------------------

// The output is always a tree whose vertex set contains every terminal
// and whose leaves are all terminals.
func TestApproximate_OutputInvariants(t *testing.T) {
	g := unitGrid(t, 5, 5)
	terminals := []string{"0,0", "0,4", "4,0", "4,4", "2,2", "1,3"}

	tree, err := steiner.Approximate(g, astar.HeuristicFunc(taxicab), terminals)
	require.NoError(t, err)

	require.True(t, isTree(tree))
	termSet := make(map[string]struct{}, len(terminals))
	for _, term := range terminals {
		termSet[term] = struct{}{}
		assert.True(t, tree.HasVertex(term))
	}
	for _, id := range tree.Vertices() {
		deg, degErr := tree.Degree(id)
		require.NoError(t, degErr)
		if deg <= 1 {
			_, isTerminal := termSet[id]
			assert.True(t, isTerminal, "non-terminal leaf %s survived pruning", id)
		}
	}

	// Every tree edge must exist in the source graph with its weight.
	for _, e := range tree.Edges() {
		w, wErr := g.EdgeWeight(e.From, e.To)
		require.NoError(t, wErr)
		assert.Equal(t, w, e.Weight)
	}
}

// Running the pipeline twice on identical inputs yields an identical
// tree (deterministic heuristic + deterministic tie-breaking).
func TestApproximate_Idempotent(t *testing.T) {
	g := unitGrid(t, 6, 4)
	terminals := []string{"0,0", "5,3", "2,2", "4,0", "0,3"}

	first, err := steiner.Approximate(g, astar.HeuristicFunc(taxicab), terminals)
	require.NoError(t, err)
	second, err := steiner.Approximate(g, astar.HeuristicFunc(taxicab), terminals)
	require.NoError(t, err)

	assert.Equal(t, first.Vertices(), second.Vertices())
	require.Equal(t, first.EdgeCount(), second.EdgeCount())
	for _, e := range first.Edges() {
		w, wErr := second.EdgeWeight(e.From, e.To)
		require.NoError(t, wErr)
		assert.Equal(t, e.Weight, w)
	}
}

// The worker-pool size must not change the result, only the wall clock.
func TestApproximate_WorkerCountInvariant(t *testing.T) {
	g := unitGrid(t, 5, 5)
	terminals := []string{"0,0", "0,4", "4,0", "4,4", "2,2"}

	serial, err := steiner.Approximate(g, astar.HeuristicFunc(taxicab), terminals, steiner.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := steiner.Approximate(g, astar.HeuristicFunc(taxicab), terminals, steiner.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, serial.Vertices(), parallel.Vertices())
	assert.Equal(t, serial.TotalWeight(), parallel.TotalWeight())
}

func TestWithWorkers_RejectsNonPositive(t *testing.T) {
	assert.Panics(t, func() { steiner.WithWorkers(0) })
	assert.Panics(t, func() { steiner.WithWorkers(-3) })
}

// ------------------------------------------------------------------
// 4. Approximation bound: weight ≤ (2 − 2/t) × optimum.
// ------------------------------------------------------------------

func TestApproximate_BoundOnSmallGraphs(t *testing.T) {
	type fixture struct {
		name      string
		graph     *core.Graph
		heuristic astar.Heuristic
		terminals []string
	}

	grid34 := unitGrid(t, 3, 4)
	complete8, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
		builder.Complete(8),
	)
	require.NoError(t, err)
	cycle9, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(1, 5)},
		builder.Cycle(9),
	)
	require.NoError(t, err)

	fixtures := []fixture{
		{
			name:      "grid 3x4 corners",
			graph:     grid34,
			heuristic: astar.HeuristicFunc(taxicab),
			terminals: []string{"0,0", "0,3", "2,0", "2,3"},
		},
		{
			name:      "complete 8 random weights",
			graph:     complete8,
			heuristic: astar.Zero(),
			terminals: []string{"0", "3", "5", "7"},
		},
		{
			name:      "cycle 9 random weights",
			graph:     cycle9,
			heuristic: astar.Zero(),
			terminals: []string{"0", "3", "6"},
		},
	}

	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			tree, err := steiner.Approximate(fx.graph, fx.heuristic, fx.terminals)
			require.NoError(t, err)
			require.True(t, isTree(tree))

			opt := optimalSteinerWeight(t, fx.graph, fx.terminals)
			ratio := 2.0 - 2.0/float64(len(fx.terminals))
			assert.LessOrEqual(t, tree.TotalWeight(), opt*ratio+1e-9,
				"approximation %g exceeds bound %g×%g", tree.TotalWeight(), ratio, opt)
			assert.GreaterOrEqual(t, tree.TotalWeight(), opt-1e-9,
				"approximation beat the optimum, brute force is wrong")
		})
	}
}
