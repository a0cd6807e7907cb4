// Package builder provides deterministic graph fixture constructors for
// tests, benchmarks and examples: orthogonal grids, path graphs, cycles
// and complete graphs.
//
// Design contract:
//
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). It creates
//     the core.Graph, resolves the builder configuration, and applies
//     the constructors in order.
//   - Determinism: the same options, seed and constructor order always
//     produce an identical graph. Stochastic weight functions draw from
//     a config-owned rand.Rand seeded via WithSeed.
//   - Constructors validate parameters early and return sentinel
//     errors; they never panic.
//
// Vertex ID schemes are fixed and documented per constructor: Grid uses
// coordinate IDs "r,c" in row-major order; PathLine, Cycle and Complete use
// decimal IDs "0", "1", ... These stay stable so tests can address
// vertices directly (grid corners, path endpoints).
//
// Example usage:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithConstantWeight(1)},
//	    builder.Grid(3, 3),
//	)
package builder
