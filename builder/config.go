// SPDX-License-Identifier: MIT
// Package: edgegen/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • sampler  = nil                  (stochastic constructors require one)
//   • weightFn = DefaultWeightFn      (constant core.DefaultWeight)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Randomness source; nil means “no randomness”.
	sampler Sampler
	// Weight generator, called once per sampled edge after its endpoints.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		sampler:  nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
