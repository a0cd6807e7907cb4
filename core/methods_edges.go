// Edge-level operations: add/update, query, remove, deterministic listing.
package core

import "sort"

// AddEdge inserts an undirected edge between from and to with the given
// weight, creating missing endpoint vertices on the fly.
//
// Each unordered pair holds at most one edge: adding a pair that already
// has an edge updates its weight in place and keeps the original
// insertion position in Edges().
//
// Errors:
//   - ErrEmptyVertexID  when either endpoint ID is empty.
//   - ErrLoopNotAllowed when from == to and loops are disabled.
//   - ErrBadWeight      when weight != 0 on an unweighted graph.
//
// Negative weights are stored as given; the algorithm packages reject
// them during their own validation pass.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	g.ensureVertexLocked(from)
	g.ensureVertexLocked(to)

	k := keyOf(from, to)
	if e, ok := g.edges[k]; ok {
		// Update in place: one weight per unordered pair.
		e.Weight = weight

		return nil
	}

	g.edges[k] = &Edge{From: from, To: to, Weight: weight, seq: g.nextSeq}
	g.nextSeq++
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}

	return nil
}

// HasEdge reports whether an edge exists between from and to
// (in either orientation).
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[keyOf(from, to)]

	return ok
}

// EdgeWeight returns the weight of the edge between from and to.
// Returns ErrEdgeNotFound when no such edge exists.
// Complexity: O(1)
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[keyOf(from, to)]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return e.Weight, nil
}

// RemoveEdge deletes the edge between from and to, leaving both
// endpoint vertices in place. Returns ErrEdgeNotFound when no such
// edge exists.
// Complexity: O(1)
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := keyOf(from, to)
	if _, ok := g.edges[k]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, k)
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)

	return nil
}

// Edges returns copies of all edges in insertion order. The copies are
// owned by the caller; mutating them does not affect the graph.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := *e
		out = append(out, &cp)
	}
	// Map iteration order is random; restore insertion order.
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of edges currently in the graph.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E)
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}
