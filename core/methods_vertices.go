// Vertex-level operations: add, query, remove, deterministic listing.
package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing
// vertex is a no-op. Returns ErrEmptyVertexID when id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// ensureVertexLocked creates the vertex and its adjacency bucket if
// absent. Caller must hold g.mu for writing.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adjacency[id] = make(map[string]struct{})
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every edge incident to it.
// Returns ErrVertexNotFound when the vertex does not exist.
// Complexity: O(deg(id))
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// Detach from every neighbor and drop the connecting edges.
	for nb := range g.adjacency[id] {
		delete(g.adjacency[nb], id)
		delete(g.edges, keyOf(id, nb))
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// The returned slice is a fresh copy owned by the caller.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices currently in the graph.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
