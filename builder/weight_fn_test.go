package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/edgegen/builder"
)

func TestWeightFns(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))

	assert.EqualValues(t, 1, builder.DefaultWeightFn(rng))
	assert.EqualValues(t, 7, builder.ConstantWeightFn(7)(nil))
	assert.EqualValues(t, 0, builder.ConstantWeightFn(0)(rng))

	// nil sampler falls back to the default weight
	assert.EqualValues(t, 1, builder.UniformWeightFn(3, 8)(nil))
	// degenerate interval
	assert.EqualValues(t, 5, builder.UniformWeightFn(5, 5)(rng))

	seen := map[int64]bool{}
	fn := builder.UniformWeightFn(1, 3)
	for i := 0; i < 200; i++ {
		w := fn(rng)
		assert.True(t, w >= 1 && w <= 3, "weight %d out of [1,3]", w)
		seen[w] = true
	}
	assert.Len(t, seen, 3, "all values of a small interval should appear")
}

func TestSequenceSampler(t *testing.T) {
	t.Parallel()

	s := &builder.SequenceSampler{Values: []int{7, -1, 3}}
	assert.Equal(t, 2, s.Intn(5))  // 7 % 5
	assert.Equal(t, 4, s.Intn(5))  // -1 wraps to 4
	assert.Equal(t, 3, s.Intn(10)) // 3
	assert.Equal(t, 1, s.Intn(3))  // script restarts: 7 % 3

	empty := &builder.SequenceSampler{}
	assert.Equal(t, 0, empty.Intn(9))
}
