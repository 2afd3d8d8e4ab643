// Package builder provides helper types for configuring edge-weight policies
// in edge constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/edgegen/core"
)

// WeightFn produces an edge weight given the (possibly nil) Sampler.
// It must be deterministic for a given sampler state.
type WeightFn func(s Sampler) int64

// DefaultWeightFn always returns core.DefaultWeight and never draws.
func DefaultWeightFn(_ Sampler) int64 {
	return core.DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_ Sampler) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max]
// inclusive. Panics if min < 0 or max < min.
// If the sampler is nil, yields core.DefaultWeight as a deterministic fallback.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(s Sampler) int64 {
		if s == nil {
			return core.DefaultWeight
		}
		if max == min {
			return min
		}
		return min + int64(s.Intn(int(max-min+1)))
	}
}
