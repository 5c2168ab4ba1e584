// SPDX-License-Identifier: MIT
// Package: cyclequbo/builder
//
// api.go - the single orchestrator BuildGraph and the Constructor type.
//
// Design contract:
//   - Constructors receive the edges built so far and return the extended list.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same options, seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic at runtime; return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclequbo/core"
)

// Constructor extends an edge list using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching edges and return sentinel errors.
//   - Append in a stable, documented order; never reorder existing edges.
//   - Draw randomness only from cfg.rng.
type Constructor func(edges []core.Edge, cfg builderConfig) ([]core.Edge, error)

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order, starting from an empty graph. The final edge list
// is checked with core.Check.
//
// Errors:
//   - any constructor error, wrapped as "BuildGraph: %w";
//   - ErrConstructFailed for a nil constructor or a result that fails core.Check.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(E) for the check.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) ([]core.Edge, error) {
	cfg := newBuilderConfig(bopts...)

	var (
		edges []core.Edge
		err   error
	)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if edges, err = fn(edges, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Overlapping cycles may produce duplicate edges; refuse them here.
	if err = core.Check(edges); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", err, ErrConstructFailed)
	}

	return edges, nil
}
