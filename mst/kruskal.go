// Kruskal's algorithm over a disjoint-set structure with path
// compression and union by rank.
package mst

import (
	"sort"

	"github.com/bendico765/heuristic-steiner-tree/core"
)

// Kruskal computes a minimum spanning forest of an undirected, weighted
// graph: a minimum spanning tree per connected component. For a
// connected graph the result is a single tree with |V|−1 edges.
//
// Error Conditions:
//   - ErrNilGraph        : graph is nil.
//   - ErrUnweightedGraph : graph.Weighted() == false.
//
// Steps:
//  1. Validate the graph.
//  2. Collect edges via graph.Edges() (insertion order), skipping
//     self-loops, and stable-sort them ascending by weight so that
//     equal weights keep insertion order (deterministic tie-break).
//  3. Initialize union-find over all vertices.
//  4. Scan sorted edges; include an edge iff its endpoints lie in
//     different components, merging them. Stop early once |V|−1 edges
//     are included (single component spanned).
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(V + E).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	if !graph.Weighted() {
		return nil, 0, ErrUnweightedGraph
	}

	vertices := graph.Vertices()
	// Zero or one vertex: the forest is trivially empty.
	if len(vertices) <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect candidate edges, skipping self-loops: they can never
	//    join two components.
	allEdges := graph.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// Stable sort keeps insertion order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Union-find over the vertex set.
	uf := newUnionFind(vertices)

	// 4. Greedy scan.
	var (
		forest      = make([]core.Edge, 0, len(vertices)-1)
		totalWeight float64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if uf.find(e.From) == uf.find(e.To) {
			// Endpoints already connected; this edge would close a cycle.
			continue
		}
		uf.union(e.From, e.To)
		forest = append(forest, *e)
		totalWeight += e.Weight
		if len(forest) == numVerts-1 {
			break
		}
	}

	return forest, totalWeight, nil
}

// unionFind is a disjoint-set structure over vertex IDs with path
// compression and union by rank.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}

	return uf
}

// find returns the representative of u's component, compressing the
// path as it walks up (iterative to avoid deep recursion).
func (uf *unionFind) find(u string) string {
	for uf.parent[u] != u {
		// Point u at its grandparent so later lookups shorten.
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the components of u and v, attaching the shallower tree
// under the deeper root.
func (uf *unionFind) union(u, v string) {
	rootU, rootV := uf.find(u), uf.find(v)
	if rootU == rootV {
		return
	}
	if uf.rank[rootU] < uf.rank[rootV] {
		uf.parent[rootU] = rootV
	} else {
		uf.parent[rootV] = rootU
		if uf.rank[rootU] == uf.rank[rootV] {
			uf.rank[rootU]++
		}
	}
}
