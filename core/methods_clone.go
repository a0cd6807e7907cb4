// Cloning: configuration-only and full deep copies.
package core

// CloneEmpty returns a new Graph with the same configuration flags but
// no vertices or edges. Useful for building derived subgraphs (the
// expansion step assembles path unions into such a clone).
// Complexity: O(1)
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Graph{
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex),
		edges:      make(map[edgeKey]*Edge),
		adjacency:  make(map[string]map[string]struct{}),
	}
}

// Clone returns a deep copy of the graph: vertices, edges, adjacency
// and insertion order are all duplicated. Vertex Metadata maps are
// shared, not copied (shallow by contract, as documented on Vertex).
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cp := &Graph{
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		nextSeq:    g.nextSeq,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[edgeKey]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]struct{}, len(g.adjacency)),
	}

	for id, v := range g.vertices {
		cp.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	for k, e := range g.edges {
		ec := *e
		cp.edges[k] = &ec
	}
	for id, bucket := range g.adjacency {
		b := make(map[string]struct{}, len(bucket))
		for nb := range bucket {
			b[nb] = struct{}{}
		}
		cp.adjacency[id] = b
	}

	return cp
}
