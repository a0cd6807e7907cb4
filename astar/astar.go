// A* search: validation ladder, frontier loop, edge relaxation and path
// reconstruction. The frontier uses the lazy-decrease-key pattern:
// improved costs push duplicate heap entries, stale entries are skipped
// when popped.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/bendico765/heuristic-steiner-tree/core"
)

// ShortestPath computes the lowest-weight path from source to target in
// the weighted graph g, guided by the heuristic h.
//
// Returns:
//
//   - path: the optimal walk (under an admissible h) including both
//     endpoints; when source == target the path is the single vertex
//     with weight 0.
//   - err:  a sentinel from types.go, wrapped with the offending
//     vertices where that aids diagnosis.
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. target must be non-empty (ErrEmptyTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. h must be non-nil (ErrNilHeuristic).
//  5. g must be weighted (ErrUnweightedGraph).
//  6. source and target must exist in g (ErrVertexNotFound).
//  7. no edge in g may have negative weight (ErrNegativeWeight).
//
// The search has no side effects: g is only read, and every run owns
// its private frontier and cost maps.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, target string, h Heuristic) (*Path, error) {
	// 1-4) Validate arguments before touching the graph.
	if source == "" {
		return nil, ErrEmptySource
	}
	if target == "" {
		return nil, ErrEmptyTarget
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 5) The search is meaningless without weights.
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 6) Both endpoints must exist.
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	// 7) Pre-scan all edges to fail fast on negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// Trivial search: the empty walk.
	if source == target {
		return &Path{Vertices: []string{source}, Weight: 0}, nil
	}

	r := &runner{
		g:       g,
		h:       h,
		source:  source,
		target:  target,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *core.Graph        // input graph; read-only within the search
	h       Heuristic          // remaining-cost estimate toward target
	source  string             // start vertex ID
	target  string             // goal vertex ID
	dist    map[string]float64 // vertex ID → best known g-cost from source
	prev    map[string]string  // vertex ID → predecessor on the best path
	visited map[string]bool    // vertex ID → g-cost finalized
	pq      frontier           // min-heap keyed by (f, insertion seq)
	seq     uint64             // monotone counter for the deterministic tie-break
}

// init seeds the frontier with the source at f = h(source, target).
func (r *runner) init() {
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	r.push(r.source, r.h.Estimate(r.source, r.target))
}

// push inserts a frontier entry with the next sequence number.
func (r *runner) push(id string, f float64) {
	heap.Push(&r.pq, &frontierItem{id: id, f: f, seq: r.seq})
	r.seq++
}

// process runs the frontier loop until the target is finalized (its pop
// is optimal under an admissible heuristic) or the frontier empties,
// which proves the target unreachable.
func (r *runner) process() (*Path, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.id

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == r.target {
			return r.reconstruct(), nil
		}

		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: no path from %q to %q", ErrUnreachableTarget, r.source, r.target)
}

// relax examines each edge incident to u and records any strictly
// cheaper route to a neighbor, pushing the neighbor back onto the
// frontier keyed by its updated f-score.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.To

		// Self-loops never shorten a path.
		if v == u {
			continue
		}
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Weight
		if best, seen := r.dist[v]; seen && newDist >= best {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist+r.h.Estimate(v, r.target))
	}

	return nil
}

// reconstruct walks the predecessor chain backwards from target to
// source and reverses it into a Path.
func (r *runner) reconstruct() *Path {
	var vertices []string
	for at := r.target; ; {
		vertices = append(vertices, at)
		if at == r.source {
			break
		}
		at = r.prev[at]
	}
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}

	return &Path{Vertices: vertices, Weight: r.dist[r.target]}
}

// frontierItem is one frontier entry: a vertex keyed by its f-score and
// the sequence number it was inserted with.
type frontierItem struct {
	id  string  // vertex ID
	f   float64 // g(id) + h(id, target) at insertion time
	seq uint64  // insertion order, secondary heap key
}

// frontier is a min-heap of *frontierItem ordered by f ascending, with
// insertion order breaking ties so equal-priority pops are
// reproducible.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
