// Sentinel errors, functional options and input validation for the
// Steiner pipeline.
package steiner

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/bendico765/heuristic-steiner-tree/astar"
	"github.com/bendico765/heuristic-steiner-tree/core"
)

// ErrInvalidInput is the base class of every input-level failure: all
// of the specific sentinels below wrap it, so callers may match either
// the precise condition or errors.Is(err, ErrInvalidInput) wholesale.
var ErrInvalidInput = errors.New("steiner: invalid input")

// Specific input-level sentinels. Each wraps ErrInvalidInput.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidInput)

	// ErrNilHeuristic indicates that no heuristic capability was supplied.
	ErrNilHeuristic = fmt.Errorf("%w: heuristic is nil", ErrInvalidInput)

	// ErrUnweightedGraph indicates the graph does not support weights.
	ErrUnweightedGraph = fmt.Errorf("%w: graph must be weighted", ErrInvalidInput)

	// ErrNoTerminals indicates an empty terminal set.
	ErrNoTerminals = fmt.Errorf("%w: terminal set is empty", ErrInvalidInput)

	// ErrDuplicateTerminal indicates the terminal set names a vertex twice.
	ErrDuplicateTerminal = fmt.Errorf("%w: duplicate terminal", ErrInvalidInput)

	// ErrTerminalNotFound indicates a terminal absent from the graph.
	ErrTerminalNotFound = fmt.Errorf("%w: terminal not in graph", ErrInvalidInput)

	// ErrNegativeWeight indicates a negative edge weight in the graph.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrInvalidInput)
)

// ErrInternalConsistency indicates a violated pipeline invariant (for
// example, the second spanning round failing to span the expanded
// subgraph). It marks a defect in this package rather than bad caller
// input, and is surfaced explicitly instead of returning a malformed
// tree.
var ErrInternalConsistency = errors.New("steiner: internal consistency violation")

// ErrBadWorkers indicates a non-positive worker count passed to
// WithWorkers.
var ErrBadWorkers = errors.New("steiner: worker count must be positive")

// Options configures the Steiner pipeline.
//
// Workers is the upper bound on concurrently computed terminal pairs in the
// metric closure. The merge is deterministic for any value; Workers
// only affects wall-clock time.
type Options struct {
	Workers int // closure worker-pool size
}

// Option represents a functional option for configuring the pipeline.
type Option func(*Options)

// WithWorkers bounds the closure worker pool to n goroutines.
// Must pass a positive value; non-positive values panic with
// ErrBadWorkers (invalid configuration, caught at call site).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults:
//   - Workers: runtime.NumCPU().
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
	}
}

// validate checks every input-level precondition, in a fixed order,
// before any search executes:
//
//  1. g non-nil, h non-nil, g weighted.
//  2. terminals non-empty, duplicate-free, all present in g.
//  3. no negative edge weight anywhere in g.
//
// Returns the first violated sentinel, wrapped with the offending
// vertex or edge where that aids diagnosis.
func validate(g *core.Graph, h astar.Heuristic, terminals []string) error {
	if g == nil {
		return ErrNilGraph
	}
	if h == nil {
		return ErrNilHeuristic
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}

	if len(terminals) == 0 {
		return ErrNoTerminals
	}
	seen := make(map[string]struct{}, len(terminals))
	for _, t := range terminals {
		if _, dup := seen[t]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateTerminal, t)
		}
		seen[t] = struct{}{}
		if !g.HasVertex(t) {
			return fmt.Errorf("%w: %q", ErrTerminalNotFound, t)
		}
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s-%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}
