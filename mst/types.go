// Sentinel errors shared by the spanning-tree algorithms.
package mst

import "errors"

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrUnweightedGraph indicates the graph does not support weights;
	// minimum spanning computation is meaningless without them.
	ErrUnweightedGraph = errors.New("mst: graph must be weighted")

	// ErrEmptyRoot indicates that no start vertex was specified for Prim.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrRootNotFound indicates Prim's root vertex is absent from the graph.
	ErrRootNotFound = errors.New("mst: root vertex not found in graph")

	// ErrDisconnected indicates Prim could not reach every vertex from
	// the root, so no single spanning tree exists. Kruskal never returns
	// it: disconnected input yields a spanning forest instead.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)
