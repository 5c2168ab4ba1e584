// SPDX-License-Identifier: MIT
// Package: cyclequbo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, e.g.
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//   • Priority when several validations fail: sizes, then probabilities,
//     then RNG presence, then construction.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (cycle length, cycle
// count, vertex count of the graph being perturbed) is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a negative count or start vertex.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrInvalidProbability indicates a fraction outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set one with WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the requested graph cannot be built:
// more noise edges than free vertex pairs, a nil constructor, or a result
// with duplicate edges.
var ErrConstructFailed = errors.New("builder: construction failed")
