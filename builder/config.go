// SPDX-License-Identifier: MIT
// Package: cyclequbo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • rng = nil by default: deterministic constructors never need it,
//     stochastic ones fail with ErrNeedRandSource until it is set.

package builder

import (
	"math/rand"
)

// defaultRNGSeed is the seed used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for noise draws; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
