// Internal configuration and deterministic defaults.
//
// builderConfig is the single source of truth for all builder knobs;
// options apply in order, later overriding earlier. Defaults are
// deterministic: constant weight 1, no RNG unless seeded.
package builder

import "math/rand"

// WeightFn produces an edge weight, drawing from rng when the fixture
// was seeded (rng is nil otherwise, so pure functions must not use it).
type WeightFn func(rng *rand.Rand) float64

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	rng      *rand.Rand // RNG for stochastic weights; nil means none
	weightFn WeightFn   // edge weight policy; used only on weighted graphs
}

// defaultConstWeight is the edge weight when no policy was configured.
const defaultConstWeight = 1.0

// BuilderOption configures the fixture builder.
type BuilderOption func(*builderConfig)

// WithSeed installs a deterministically seeded RNG for stochastic
// weight functions.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn installs a custom weight policy.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(cfg *builderConfig) { cfg.weightFn = fn }
}

// WithConstantWeight makes every edge weigh w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithUniformWeight draws weights uniformly from [min, max). Requires
// WithSeed, otherwise the constructor's rng is nil and the draw panics.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(func(rng *rand.Rand) float64 {
		return min + rng.Float64()*(max-min)
	})
}

// newBuilderConfig resolves deterministic defaults, then applies all
// options in order.
// Complexity: O(len(opts))
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
