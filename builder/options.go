// SPDX-License-Identifier: MIT
// Package: cyclequbo/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic RNG from seed (0 maps to a fixed
// default seed, so the zero value is still reproducible).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}
