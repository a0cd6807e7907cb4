// Package core defines the central Graph, Vertex, and Edge types shared
// by every algorithm in this module, and provides thread-safe primitives
// for building, querying, and cloning graphs.
//
// Graphs here are undirected: the Steiner-tree pipeline (metric closure,
// spanning trees, pruning) is defined over undirected weighted graphs,
// so the model does not carry directedness flags. Each unordered vertex
// pair holds at most one edge; re-adding an existing pair updates its
// weight in place. Self-loops are rejected unless the graph was created
// with WithLoops, and are skipped by the algorithms either way.
//
// All mutating and reading methods take an internal sync.RWMutex, so a
// graph may be read concurrently from many goroutines (the metric
// closure computes terminal pairs in parallel against one shared graph).
//
// Iteration order is deterministic: Vertices reports IDs in ascending
// order, Edges reports edges in insertion order. Algorithms rely on
// this for reproducible tie-breaking.
//
// Errors:
//
//	ErrEmptyVertexID  – vertex ID is the empty string.
//	ErrVertexNotFound – requested vertex does not exist.
//	ErrEdgeNotFound   – requested edge does not exist.
//	ErrBadWeight      – non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed – self-loop when loops are disabled.
package core
