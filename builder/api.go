// Thin public entry point: the Constructor type and the BuildGraph
// orchestrator. Topologies live in the impl_*.go files.
package builder

import (
	"github.com/bendico765/heuristic-steiner-tree/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, respect the
// graph's weighted flag, and preserve determinism for the same config
// and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with the graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. The first constructor error aborts the build.
// Complexity: sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// edgeWeight resolves one edge weight under the graph's weight policy:
// unweighted graphs always take 0 (core rejects anything else).
func edgeWeight(g *core.Graph, cfg builderConfig) float64 {
	if !g.Weighted() {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}
