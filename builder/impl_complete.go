// SPDX-License-Identifier: MIT
// Package: cyclequbo/builder
//
// impl_complete.go - implementation of Complete(start, n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); start ≥ 0 (else ErrBadSize).
//   • Emits each unordered pair {i,j} with i<j once as i→j followed by j→i,
//     so every vertex pair carries a 2-cycle.
//   • For n ≥ 3 the result has many cycle covers, which makes it the densest
//     input for the max-one-in/out and 2-cycle penalties.
//
// Complexity:
//   • Time: O(n²) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclequbo/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that appends the complete directed graph
// on vertices start..start+n−1.
func Complete(start, n int) Constructor {
	return func(edges []core.Edge, _ builderConfig) ([]core.Edge, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if start < 0 {
			return nil, fmt.Errorf("%s: start=%d < 0: %w", methodComplete, start, ErrBadSize)
		}

		for i := 0; i < n; i++ { // outer endpoint index
			u := start + i
			for j := i + 1; j < n; j++ { // right endpoint index (strictly greater)
				v := start + j
				edges = append(edges, core.Edge{From: u, To: v}, core.Edge{From: v, To: u})
			}
		}

		return edges, nil
	}
}
