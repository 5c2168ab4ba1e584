// SPDX-License-Identifier: MIT
// Package: cyclequbo/builder
//
// impl_cycle.go - Cycle(start, n) and HamiltonianCycles(count, length).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); start ≥ 0 (else ErrBadSize).
//   • Emits edges in stable order start+i → start+(i+1)%n for i = 0..n-1.
//   • HamiltonianCycles places cycle j on vertices j·length .. j·length+length−1.
//
// Complexity: O(n) per cycle, O(count·length) overall.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclequbo/core"
)

const (
	methodCycle             = "Cycle"
	methodHamiltonianCycles = "HamiltonianCycles"
	minCycleNodes           = 3
	minCycleCount           = 1
)

// Cycle returns a Constructor that appends the directed cycle
// start → start+1 → … → start+n−1 → start.
func Cycle(start, n int) Constructor {
	return func(edges []core.Edge, _ builderConfig) ([]core.Edge, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if start < 0 {
			return nil, fmt.Errorf("%s: start=%d < 0: %w", methodCycle, start, ErrBadSize)
		}

		return appendCycle(edges, start, n), nil
	}
}

// HamiltonianCycles returns a Constructor that appends count disjoint
// cycles of the given length; cycle j covers vertices j·length onward.
// Every vertex of the result lies on exactly one cycle, so the cycles
// themselves are the reference partition of the generated graph.
func HamiltonianCycles(count, length int) Constructor {
	return func(edges []core.Edge, _ builderConfig) ([]core.Edge, error) {
		if count < minCycleCount {
			return nil, fmt.Errorf("%s: count=%d < min=%d: %w",
				methodHamiltonianCycles, count, minCycleCount, ErrTooFewVertices)
		}
		if length < minCycleNodes {
			return nil, fmt.Errorf("%s: length=%d < min=%d: %w",
				methodHamiltonianCycles, length, minCycleNodes, ErrTooFewVertices)
		}

		for j := 0; j < count; j++ {
			edges = appendCycle(edges, j*length, length)
		}

		return edges, nil
	}
}

// appendCycle appends the ring over start..start+n-1 in ascending order.
func appendCycle(edges []core.Edge, start, n int) []core.Edge {
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{From: start + i, To: start + (i+1)%n})
	}

	return edges
}
