// This file declares Vertex, Edge, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor. Methods live in the
// methods_*.go files alongside.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
//
// From and To record the endpoints in the orientation the edge was first
// added with; the edge itself is symmetric. Weight is the non-negative
// cost of traversing the edge (the core does not enforce non-negativity;
// the algorithm packages validate it eagerly and fail fast).
type Edge struct {
	// From is one endpoint vertex ID.
	From string

	// To is the other endpoint vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight float64

	// seq is the insertion sequence number, used for deterministic
	// ordering of Edges() and as the tie-break key in stable sorts.
	seq uint64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// edgeKey identifies an edge by its unordered endpoint pair.
// Invariant: U <= V lexicographically.
type edgeKey struct {
	U, V string
}

// keyOf canonicalizes an endpoint pair into an edgeKey.
func keyOf(a, b string) edgeKey {
	if a <= b {
		return edgeKey{U: a, V: b}
	}

	return edgeKey{U: b, V: a}
}

// Graph is the core in-memory graph data structure: undirected, with at
// most one edge per unordered vertex pair.
//
// mu protects all maps and counters; read operations take RLock so
// concurrent readers never contend with each other.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	nextSeq   uint64                         // edge insertion counter
	vertices  map[string]*Vertex             // vertex ID → Vertex
	edges     map[edgeKey]*Edge              // unordered pair → Edge
	adjacency map[string]map[string]struct{} // vertex ID → neighbor ID set
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is unweighted and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[edgeKey]*Edge),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether the graph permits non-zero edge weights.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1)
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from == to) are permitted.
// If false, AddEdge(v, v, ...) fails with ErrLoopNotAllowed.
// Complexity: O(1)
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
