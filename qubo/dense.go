package qubo

import (
	"fmt"

	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/matrix"
)

// ToDense exports q as an upper-triangular matrix over its variables.
// The returned slice gives the variable of each row/column, sorted by
// core.Less; Q[i][i] is the linear coefficient of vars[i] and Q[i][j], i<j,
// the coupling of vars[i] and vars[j].
//
// For any state, Energy(q, state) equals xᵀ·Q·x where x = StateVector(vars, state).
//
// Complexity: O(n² + |Q|) time and space.
func ToDense(q QUBO) (*matrix.Dense, []core.Edge, error) {
	vars := q.Variables()
	index := make(map[core.Edge]int, len(vars))
	for i, e := range vars {
		index[e] = i
	}

	m, err := matrix.NewSquare(len(vars))
	if err != nil {
		return nil, nil, fmt.Errorf("ToDense: %w", err)
	}
	for _, k := range q.sortedKeys() {
		// Canonical keys keep I before J, so writes stay on or above the diagonal.
		if err = m.Add(index[k.I], index[k.J], q[k]); err != nil {
			return nil, nil, fmt.Errorf("ToDense: %s×%s: %w", k.I, k.J, err)
		}
	}

	return m, vars, nil
}

// StateVector returns the 0/1 vector over vars with ones at the edges of state.
// Edges of state that are not in vars are ignored.
func StateVector(vars []core.Edge, state []core.Edge) []float64 {
	active := make(map[core.Edge]struct{}, len(state))
	for _, e := range state {
		active[e] = struct{}{}
	}
	x := make([]float64, len(vars))
	for i, e := range vars {
		if _, ok := active[e]; ok {
			x[i] = 1
		}
	}

	return x
}
