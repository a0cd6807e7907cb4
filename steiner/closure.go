// Metric closure over the terminal set: a complete graph whose edge
// weights are shortest-path distances, with every underlying path
// retained for the expansion stage.
package steiner

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/bendico765/heuristic-steiner-tree/astar"
	"github.com/bendico765/heuristic-steiner-tree/core"
)

// pairKey identifies an unordered terminal pair. Invariant: U < V
// lexicographically.
type pairKey struct {
	U, V string
}

// pairOf canonicalizes two terminal IDs into a pairKey.
func pairOf(a, b string) pairKey {
	if a <= b {
		return pairKey{U: a, V: b}
	}

	return pairKey{U: b, V: a}
}

// Closure is the metric closure of a terminal set: a complete weighted
// graph over the terminals plus the concrete shortest path behind each
// closure edge. Immutable after BuildClosure returns.
type Closure struct {
	graph *core.Graph             // complete graph; edge weight = path weight
	paths map[pairKey]*astar.Path // unordered pair → retained path
}

// Graph returns the complete terminal graph. Callers must treat it as
// read-only.
func (c *Closure) Graph() *core.Graph { return c.graph }

// Path returns the stored shortest path between two terminals, in
// either argument order. The second result is false when the pair is
// not part of the closure.
func (c *Closure) Path(u, v string) (*astar.Path, bool) {
	p, ok := c.paths[pairOf(u, v)]

	return p, ok
}

// Terminals returns the closure's terminal IDs in ascending order.
func (c *Closure) Terminals() []string { return c.graph.Vertices() }

// BuildClosure computes the metric closure of terminals within g: one
// astar.ShortestPath call per unordered terminal pair, exactly
// t(t−1)/2 searches, each pair computed once.
//
// The pairs are independent and run on an errgroup worker pool bounded
// by WithWorkers (default runtime.NumCPU()). Each result lands in its
// own pair-indexed slot, so the assembled closure is identical for any
// pool size. The first unreachable pair cancels the remaining work and
// its astar.ErrUnreachableTarget is propagated unmodified: a
// disconnected terminal makes every downstream stage meaningless.
//
// A single terminal yields a closure of one vertex and no edges.
//
// Complexity: O(t² · (V + E) log V) time across the pool, O(t² + paths)
// space.
func BuildClosure(g *core.Graph, h astar.Heuristic, terminals []string, opts ...Option) (*Closure, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, h, terminals); err != nil {
		return nil, err
	}

	return buildClosure(g, terminals, h, cfg)
}

// buildClosure assumes validated inputs; shared by BuildClosure and
// Approximate so validation runs exactly once per pipeline.
func buildClosure(g *core.Graph, terminals []string, h astar.Heuristic, cfg Options) (*Closure, error) {
	// Deterministic pair order: lexicographic combinations over the
	// sorted terminal list.
	sorted := append([]string(nil), terminals...)
	sort.Strings(sorted)

	type pair struct{ u, v string }
	pairs := make([]pair, 0, len(sorted)*(len(sorted)-1)/2)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			pairs = append(pairs, pair{u: sorted[i], v: sorted[j]})
		}
	}

	// Fan out the searches; slot-per-pair keeps the merge deterministic.
	results := make([]*astar.Path, len(pairs))
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(cfg.Workers)
	for idx, p := range pairs {
		idx, p := idx, p
		eg.Go(func() error {
			// A failed sibling already cancelled the group; skip the search.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			path, err := astar.ShortestPath(g, p.u, p.v, h)
			if err != nil {
				return err
			}
			results[idx] = path

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Assemble the complete graph and the path table.
	c := &Closure{
		graph: core.NewGraph(core.WithWeighted()),
		paths: make(map[pairKey]*astar.Path, len(pairs)),
	}
	for _, t := range sorted {
		if err := c.graph.AddVertex(t); err != nil {
			return nil, err
		}
	}
	for idx, p := range pairs {
		path := results[idx]
		if err := c.graph.AddEdge(p.u, p.v, path.Weight); err != nil {
			return nil, err
		}
		c.paths[pairOf(p.u, p.v)] = path
	}

	return c, nil
}
