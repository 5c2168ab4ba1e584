package qubo

import (
	"github.com/katalvlaran/cyclequbo/core"
)

// Energy evaluates q at the 0/1 assignment whose active variables are the
// edges of state: the sum, over every unordered pair of active variables
// (including each variable with itself), of the stored coefficient.
//
// state is treated as a set; repeated edges count once. Pairs absent from q
// contribute zero, so state may mention variables q does not know.
// Terms are summed in canonical key order, making the result reproducible
// to the last bit.
//
// Complexity: O(|Q| + m log m) where m is the number of matching entries.
func Energy(q QUBO, state []core.Edge) float64 {
	if len(q) == 0 || len(state) == 0 {
		return 0
	}
	active := make(map[core.Edge]struct{}, len(state))
	for _, e := range state {
		active[e] = struct{}{}
	}

	var hits []Key
	for k := range q {
		if _, ok := active[k.I]; !ok {
			continue
		}
		if _, ok := active[k.J]; !ok {
			continue
		}
		hits = append(hits, k)
	}
	sortKeys(hits)

	var sum float64
	for _, k := range hits {
		sum += q[k]
	}

	return sum
}
