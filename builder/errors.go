// SPDX-License-Identifier: MIT
// Package: edgegen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with errors.Wrapf, never by
//     formatting parameters into the sentinel itself.
//   • Priority when several validations fail: size checks first
//     (ErrBadSize, ErrTooFewVertices), then ErrNeedRandSource.

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates edges were requested over a vertex range that
// cannot hold an endpoint (n < 1 with m > 0).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a negative vertex or edge count.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates a stochastic constructor ran without a Sampler
// (WithSeed/WithRand/WithSampler must be set).
var ErrNeedRandSource = errors.New("builder: sampler is required")

// ErrConstructFailed indicates BuildEdges received a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
