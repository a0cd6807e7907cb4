// Adjacency queries: neighbors, degrees, adjacency snapshot.
package core

import "sort"

// Neighbors returns copies of every edge incident to id, each oriented
// so that From == id, sorted by neighbor ID ascending. A self-loop is
// reported once. Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg log deg)
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	nbs := make([]string, 0, len(bucket))
	for nb := range bucket {
		nbs = append(nbs, nb)
	}
	sort.Strings(nbs)

	out := make([]*Edge, 0, len(nbs))
	for _, nb := range nbs {
		e := g.edges[keyOf(id, nb)]
		out = append(out, &Edge{From: id, To: nb, Weight: e.Weight, seq: e.seq})
	}

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in ascending order.
// Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg log deg)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(bucket))
	for nb := range bucket {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of distinct neighbors of id (a self-loop
// counts once). Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// AdjacencyList returns a snapshot of the adjacency structure as a map
// from vertex ID to its sorted neighbor IDs. The snapshot is a deep
// copy; mutating it does not affect the graph.
// Complexity: O(V + E log E)
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, bucket := range g.adjacency {
		nbs := make([]string, 0, len(bucket))
		for nb := range bucket {
			nbs = append(nbs, nb)
		}
		sort.Strings(nbs)
		out[id] = nbs
	}

	return out
}
