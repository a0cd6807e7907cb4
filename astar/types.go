// This file declares the Path result type, the Heuristic capability,
// and the sentinel errors returned by ShortestPath.
package astar

import "errors"

// Sentinel errors returned by the A* implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("astar: source vertex ID is empty")

	// ErrEmptyTarget indicates that the provided target vertex ID is empty.
	ErrEmptyTarget = errors.New("astar: target vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that no Heuristic was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted;
	// shortest-path search requires non-negative weights.
	ErrUnweightedGraph = errors.New("astar: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("astar: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrUnreachableTarget indicates that no path exists between the source
	// and target vertices. Wrapped occurrences carry both endpoint IDs.
	ErrUnreachableTarget = errors.New("astar: target unreachable from source")
)

// Path is an ordered walk through the graph: consecutive vertices are
// adjacent, and Weight is the sum of the traversed edge weights.
type Path struct {
	// Vertices lists the walk from source to target inclusive.
	Vertices []string

	// Weight is the total cost of the walk.
	Weight float64
}

// Heuristic estimates the remaining cost from u to v. It is a
// caller-supplied capability: implementations may carry state (for
// example precomputed coordinate tables), and must be safe for
// concurrent use when the metric closure runs terminal pairs in
// parallel.
//
// Contract (unchecked): Estimate must be non-negative and, for the
// search's optimality guarantee, admissible: it must never exceed the
// true shortest-path cost between its arguments. Violating
// admissibility silently degrades result quality, not execution.
type Heuristic interface {
	Estimate(u, v string) float64
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc func(u, v string) float64

// Estimate calls f(u, v).
func (f HeuristicFunc) Estimate(u, v string) float64 { return f(u, v) }

// Zero returns the null heuristic (always 0), which turns ShortestPath
// into plain Dijkstra. Trivially admissible on any graph.
func Zero() Heuristic {
	return HeuristicFunc(func(_, _ string) float64 { return 0 })
}
