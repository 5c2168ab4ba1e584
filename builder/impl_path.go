// SPDX-License-Identifier: MIT
// Package: cyclequbo/builder
//
// impl_path.go - implementation of Path(start, n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); start ≥ 0 (else ErrBadSize).
//   - Emits edges start+i-1 → start+i for i=1..n-1 in stable increasing order.
//   - A path has no cycle cover; it is the canonical "unsolvable" input.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclequbo/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends the directed path
// start → start+1 → … → start+n−1.
func Path(start, n int) Constructor {
	return func(edges []core.Edge, _ builderConfig) ([]core.Edge, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if start < 0 {
			return nil, fmt.Errorf("%s: start=%d < 0: %w", methodPath, start, ErrBadSize)
		}

		for i := 1; i < n; i++ {
			edges = append(edges, core.Edge{From: start + i - 1, To: start + i})
		}

		return edges, nil
	}
}
