// File: methods_edges.go
// Role: incidence queries and input hygiene over an edge list.
// Determinism:
//   - Every query preserves the input order of edges.
// Notes:
//   - Queries are total: an unknown vertex yields an empty slice, never an error.
//   - Check is the only function here that returns errors; the encoder and
//     validator do not call it, so callers decide how strict to be.

package core

import "fmt"

// EdgesOut returns the edges whose source is v, in input order.
// Complexity: O(E).
func EdgesOut(edges []Edge, v int) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.From == v {
			out = append(out, e)
		}
	}

	return out
}

// EdgesIn returns the edges whose target is v, in input order.
// Complexity: O(E).
func EdgesIn(edges []Edge, v int) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.To == v {
			out = append(out, e)
		}
	}

	return out
}

// EdgesIncident returns the edges touching v as either endpoint, in input
// order. Each edge appears once even though it is the union of EdgesOut and
// EdgesIn.
// Complexity: O(E).
func EdgesIncident(edges []Edge, v int) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.Touches(v) {
			out = append(out, e)
		}
	}

	return out
}

// Contains reports whether edges holds the ordered pair e.
// Complexity: O(E).
func Contains(edges []Edge, e Edge) bool {
	for _, x := range edges {
		if x == e {
			return true
		}
	}

	return false
}

// Check verifies that edges form a well-formed graph: non-negative ids,
// no self-loops, no duplicate ordered pairs. The first violation in input
// order is reported, wrapped with its position.
//
// Complexity: O(E) time, O(E) space.
func Check(edges []Edge) error {
	seen := make(map[Edge]struct{}, len(edges))
	for i, e := range edges {
		if e.From < 0 || e.To < 0 {
			return fmt.Errorf("Check: edge #%d %s: %w", i, e.Label(), ErrNegativeVertex)
		}
		if e.From == e.To {
			return fmt.Errorf("Check: edge #%d %s: %w", i, e.Label(), ErrLoopNotAllowed)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("Check: edge #%d %s: %w", i, e.Label(), ErrMultiEdgeNotAllowed)
		}
		seen[e] = struct{}{}
	}

	return nil
}
