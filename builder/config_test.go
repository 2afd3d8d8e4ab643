// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSamplerOptions verifies that sampler options configure the sampler
// field correctly, including reproducibility with WithSeed.
func TestSamplerOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, sampler should be nil (no hidden randomness)
	cfgDefault := newBuilderConfig()
	require.Nil(t, cfgDefault.sampler)

	// 2. WithRand should install the exact RNG
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	require.Same(t, expRNG, cfgWithRand.sampler)

	// 3. WithSampler accepts any Sampler
	seq := &SequenceSampler{Values: []int{4}}
	cfgSeq := newBuilderConfig(WithSampler(seq))
	require.Equal(t, 4, cfgSeq.sampler.Intn(10))

	// 4. WithSeed should produce reproducible draws
	a := newBuilderConfig(WithSeed(42)).sampler
	b := newBuilderConfig(WithSeed(42)).sampler
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000), "draw %d", i)
	}

	// 5. Last option wins
	cfgOverride := newBuilderConfig(WithSampler(seq), WithRand(expRNG))
	require.Same(t, expRNG, cfgOverride.sampler)
}

// TestOptionPanics verifies that option constructors fail fast on nil.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithSampler(nil) })
	require.Panics(t, func() { WithWeightFn(nil) })
	require.Panics(t, func() { WithConstantWeight(-1) })
	require.Panics(t, func() { WithUniformWeight(5, 2) })
}

// TestWeightFnOptions verifies that weight options apply and override in order.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	cfgDefault := newBuilderConfig()
	require.EqualValues(t, 1, cfgDefault.weightFn(nil))

	cfgConst := newBuilderConfig(WithConstantWeight(9))
	require.EqualValues(t, 9, cfgConst.weightFn(rng))

	cfgOverride := newBuilderConfig(WithConstantWeight(9), WithUniformWeight(2, 4))
	for i := 0; i < 20; i++ {
		w := cfgOverride.weightFn(rng)
		require.GreaterOrEqual(t, w, int64(2))
		require.LessOrEqual(t, w, int64(4))
	}
}
