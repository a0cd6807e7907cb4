// Package steiner approximates minimum-weight Steiner trees with the
// construction of Kou, Markowsky and Berman (1981), guided by a
// caller-supplied A* heuristic.
//
// What & Why
//
//   - The Steiner tree problem: given a weighted undirected graph and a
//     set of required "terminal" vertices, find a minimum-weight
//     connected acyclic subgraph spanning all terminals, possibly
//     passing through extra (Steiner) vertices. Exact solutions are
//     NP-hard; this package computes the classic 2-approximation.
//   - Guarantee: the returned tree weighs at most (2 − 2/t) times the
//     optimum, where t is the number of terminals.
//
// Pipeline (Approximate runs these stages in order):
//
//  1. Metric closure: a complete graph over the terminals whose edge
//     weights are shortest-path distances in the original graph,
//     computed by astar.ShortestPath once per unordered terminal pair.
//     Pairs are independent, so they run on an errgroup worker pool
//     (WithWorkers); results merge into pair-indexed slots, keeping the
//     outcome identical regardless of scheduling.
//  2. First spanning round: mst.Kruskal over the closure.
//  3. Expansion: every closure tree edge is replaced by its stored
//     concrete path; the union of those paths (vertices and edges
//     deduplicated, weights copied from the source graph) forms a
//     connected subgraph of the original.
//  4. Second spanning round: mst.Kruskal over the expanded subgraph.
//  5. Pruning: non-terminal leaves are removed iteratively until every
//     remaining leaf is a terminal.
//
// Complexity: dominated by the closure, t(t−1)/2 A* searches of
// O((V + E) log V) each; the two spanning rounds and the prune are
// near-linear in the expanded subgraph.
//
// Errors:
//
//	Invalid inputs (nil graph or heuristic, unweighted graph, empty or
//	duplicated terminal set, terminal missing from the graph, negative
//	edge weight) are rejected before any search starts; every such
//	sentinel matches errors.Is(err, ErrInvalidInput). A terminal pair
//	with no connecting path surfaces astar.ErrUnreachableTarget
//	unmodified; no partial tree is returned. ErrInternalConsistency
//	signals a violated pipeline invariant and indicates a defect in
//	this package, not in the caller's input.
//
// Example usage:
//
//	tree, err := steiner.Approximate(g, astar.HeuristicFunc(taxicab),
//	    []string{"0,0", "0,2", "2,0", "2,2"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tree.TotalWeight())
package steiner
