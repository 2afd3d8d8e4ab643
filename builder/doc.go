// Package builder samples random edge lists for graph fixtures using
// “functional‐options”‐style configuration.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the Sampler and the WeightFn.
//   - Randomness:
//     – Sampler:           the only source of randomness (Intn); *rand.Rand
//     satisfies it, so WithSeed gives byte-for-byte reproducible fixtures.
//   - Edge‐weight policies (WeightFn):
//     – DefaultWeightFn:   constant core.DefaultWeight (1).
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//   - Constructors:
//     – RandomEdges:          m directed edges, endpoints uniform in [0,n).
//     – RandomMirroredEdges:  m sampled pairs, each followed by its reverse.
//
// Guarantees:
//
//   - Determinism: same options, same seed and same constructor order ⇒
//     identical edges in identical order.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors never panic; they return sentinel errors checked with
//     errors.Is (ErrTooFewVertices, ErrBadSize, ErrNeedRandSource, ...).
//   - No dedup: self-loops and repeated edges are kept as sampled.
//
// Example:
//
//	edges, err := builder.BuildEdges(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomEdges(10, 60),
//	)
package builder
