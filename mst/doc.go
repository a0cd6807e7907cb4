// Package mst computes minimum spanning trees and forests of weighted
// undirected graphs.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), a minimum spanning
//     tree is a subset T ⊆ E that connects all of V with minimum total
//     weight. When G is disconnected no single tree can span it; the
//     natural generalization is a minimum spanning forest, one tree per
//     connected component.
//   - The Steiner-tree approximation runs two MST rounds: one over the
//     metric closure of the terminals and one over the expanded
//     subgraph. Both calls go through Kruskal below.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Sorts all edges ascending by weight and merges components through
//     a disjoint-set (union-find) structure with path compression and
//     union by rank. Edges whose endpoints already share a component
//     are skipped. Disconnected input yields a spanning forest rather
//     than an error; connectivity policy belongs to the caller (the
//     Steiner orchestrator treats a non-spanning second-round result as
//     an internal inconsistency).
//     Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(V + E).
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grows a single tree outward from root using a min-heap of
//     candidate edges. Errors with ErrDisconnected when the graph
//     cannot be spanned from root. Preferred on sparse graphs when a
//     sensible starting vertex is known.
//     Complexity: O(E log V). Memory: O(V + E).
//
// Determinism
//
//	core.Graph.Edges() reports edges in insertion order and Kruskal
//	sorts them stably, so equal-weight edges are considered in the
//	order they were added. Prim breaks equal-weight heap ties by the
//	far endpoint ID. Repeated runs on the same graph return the same
//	edge set.
package mst
