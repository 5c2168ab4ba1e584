// Package core provides the graph model shared by every cyclequbo package:
// a directed Edge between two non-negative integer vertices, and pure query
// functions over an ordered edge list.
//
// A graph is simply a []Edge. The vertex set is derived from the endpoints
// and never stored separately, so every vertex appears in at least one edge.
// Every Edge doubles as the name of one binary decision variable in the
// QUBO encoding (see package qubo), which is why it has a canonical textual
// label:
//
//	Edge{From: 12, To: 5}.Label() == "(12, 5)"
//
// The label is a de facto wire format: external samplers report the active
// variables of a state as a list of labels, e.g. "['(1, 2)', '(2, 3)']",
// which ParseState turns back into edges.
//
// Query functions:
//
//	Vertices(edges)          // sorted, unique endpoints       O(E log V)
//	EdgesOut(edges, v)       // edges with From == v           O(E)
//	EdgesIn(edges, v)        // edges with To == v             O(E)
//	EdgesIncident(edges, v)  // edges touching v (either end)  O(E)
//
// None of the queries fail; an absent vertex simply yields an empty result.
// Input hygiene is a separate, opt-in step:
//
//	Check(edges) error
//
// Errors:
//
//	ErrNegativeVertex      - a vertex identifier is negative.
//	ErrLoopNotAllowed      - an edge (v, v).
//	ErrMultiEdgeNotAllowed - the same ordered pair appears twice.
//	ErrBadLabel            - a label or state could not be parsed.
//
// All functions are pure and allocate fresh results; inputs are never
// mutated, so they are safe to call concurrently on shared slices.
package core
