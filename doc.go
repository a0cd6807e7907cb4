// Package steinertree approximates minimum-weight Steiner trees on
// weighted undirected graphs, using the construction of Kou, Markowsky
// and Berman guided by a caller-supplied A* heuristic.
//
// Given a graph and a set of required "terminal" vertices, the library
// produces a connected acyclic subgraph that spans every terminal
// (possibly through extra Steiner vertices) whose total weight is at
// most (2 − 2/t) times the optimal, where t is the number of terminals.
//
// The module is organized as small, focused subpackages:
//
//	core/    - the shared Graph, Vertex and Edge types with thread-safe
//	           mutation and deterministic iteration order
//	astar/   - heuristic-guided shortest-path search between two vertices
//	mst/     - minimum spanning tree / forest (Kruskal, Prim)
//	steiner/ - the metric closure, subgraph expansion, pruning and the
//	           Approximate entry point that ties the pipeline together
//	builder/ - deterministic fixture constructors (grids, paths, cycles,
//	           complete graphs) used by tests and examples
//
// Quick sketch of the pipeline on a 3×3 unit grid with the four corners
// as terminals:
//
//	0,0──0,1──0,2
//	 │    │    │
//	1,0──1,1──1,2
//	 │    │    │
//	2,0──2,1──2,2
//
// The closure connects the corners by their grid distances, two rounds
// of MST plus pruning then yield a weight-6 tree routed along the
// border rows and columns, which is optimal for this instance.
//
//	go get github.com/bendico765/heuristic-steiner-tree
package steinertree
