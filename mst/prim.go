// Prim's algorithm: grow a single spanning tree from a root vertex
// using a min-heap of frontier edges.
package mst

import (
	"container/heap"

	"github.com/bendico765/heuristic-steiner-tree/core"
)

// Prim computes the minimum spanning tree of an undirected, weighted
// graph by growing outward from root.
//
// Error Conditions:
//   - ErrNilGraph        : graph is nil.
//   - ErrUnweightedGraph : graph.Weighted() == false.
//   - ErrEmptyRoot       : root is the empty string.
//   - ErrRootNotFound    : root does not exist in the graph.
//   - ErrDisconnected    : the graph cannot be spanned from root.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited; push its incident edges onto a min-heap.
//  3. Repeatedly pop the cheapest frontier edge; if it reaches an
//     unvisited vertex, include it and push that vertex's edges.
//  4. Stop at |V|−1 edges; fewer means the graph is disconnected.
//
// Determinism: equal-weight heap entries order by far endpoint ID, and
// neighbors are pushed in sorted order, so results are reproducible.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	if !graph.Weighted() {
		return nil, 0, ErrUnweightedGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}

	n := graph.VertexCount()
	if n == 1 {
		// Single-vertex tree: no edges, zero weight.
		return []core.Edge{}, 0, nil
	}

	visited := make(map[string]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	// 2. Seed the frontier with the root's incident edges.
	visited[root] = true
	neighbors, err := graph.Neighbors(root)
	if err != nil {
		return nil, 0, err
	}
	for _, e := range neighbors {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}

	// 3. Main loop: expand by the cheapest frontier edge.
	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(pq).(*core.Edge)
		v := e.To
		if visited[v] {
			// Reaching an already-included vertex would close a cycle.
			continue
		}
		visited[v] = true
		tree = append(tree, *e)
		totalWeight += e.Weight

		next, err := graph.Neighbors(v)
		if err != nil {
			return nil, 0, err
		}
		for _, ne := range next {
			if !visited[ne.To] {
				heap.Push(pq, ne)
			}
		}
	}

	// 4. A spanning tree needs exactly n-1 edges.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}

// edgePQ is a min-heap of *core.Edge ordered by Weight ascending, far
// endpoint ID breaking ties.
type edgePQ []*core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}

	return pq[i].To < pq[j].To
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*core.Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
