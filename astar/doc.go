// Package astar implements heuristic-guided shortest-path search (A*)
// between two vertices of a weighted undirected graph.
//
// What & Why
//
//   - A* explores a priority-ordered frontier of partial paths keyed by
//     f(v) = g(v) + h(v, target), where g(v) is the best known cost from
//     the source to v and h is a caller-supplied estimate of the
//     remaining cost to the target.
//   - With an admissible h (one that never overestimates the true
//     remaining cost) the first time the target leaves the frontier its
//     recorded cost is optimal. With h ≡ 0 the search degrades exactly
//     to Dijkstra's algorithm.
//   - The Steiner-tree metric closure calls this search once per
//     terminal pair; a good heuristic (grid distance, coordinate
//     lookups) is what makes the closure affordable on large graphs.
//
// Complexity:
//
//	– Time:  O((V + E) log V) worst case (identical to Dijkstra; a
//	  sharper heuristic expands fewer vertices).
//	– Space: O(V + E) for the cost map and the lazily-grown frontier.
//
// Determinism:
//
//	Frontier entries with equal f-keys pop in insertion order (a
//	monotone sequence number is the secondary heap key), so repeated
//	runs over the same graph and heuristic return the same path.
//
// Errors (sentinel):
//
//	– ErrEmptySource       if the source vertex ID is empty.
//	– ErrEmptyTarget       if the target vertex ID is empty.
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrNilHeuristic      if no heuristic was supplied.
//	– ErrUnweightedGraph   if the graph does not support weights.
//	– ErrVertexNotFound    if either endpoint is missing from the graph.
//	– ErrNegativeWeight    if any edge weight is negative.
//	– ErrUnreachableTarget if no path exists between the endpoints.
//
// Example usage:
//
//	path, err := astar.ShortestPath(g, "0,0", "2,2", astar.HeuristicFunc(taxicab))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path.Vertices, path.Weight)
package astar
