// Package core defines the Edge type, its canonical ordering and the
// sentinel errors of the graph model.
//
// Errors:
//
//	ErrNegativeVertex      - vertex identifier below zero.
//	ErrLoopNotAllowed      - self-loop (v, v).
//	ErrMultiEdgeNotAllowed - duplicate ordered pair.
//	ErrBadLabel            - unparsable label or state text.
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph model operations.
var (
	// ErrNegativeVertex indicates an edge endpoint below zero.
	ErrNegativeVertex = errors.New("core: negative vertex id")

	// ErrLoopNotAllowed indicates an edge whose endpoints coincide.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the same ordered pair appears twice.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadLabel indicates a variable label or state serialization that
	// could not be parsed back into edges.
	ErrBadLabel = errors.New("core: malformed edge label")
)

// Edge is a directed arc From→To. It is also the identity of one binary
// variable of the optimization problem, so two edges are the same variable
// iff their ordered pairs are equal.
type Edge struct {
	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int
}

// Reverse returns the edge with swapped endpoints.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// Touches reports whether v is either endpoint of e.
func (e Edge) Touches(v int) bool {
	return e.From == v || e.To == v
}

// String implements fmt.Stringer using the canonical label.
func (e Edge) String() string {
	return e.Label()
}

// Label returns the canonical variable name "(u, v)".
// Distinct edges always produce distinct labels and ParseLabel inverts it.
func (e Edge) Label() string {
	return fmt.Sprintf("(%d, %d)", e.From, e.To)
}

// MarshalJSON encodes the edge as a two-element array [from, to].
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{e.From, e.To})
}

// UnmarshalJSON decodes a two-element array [from, to].
func (e *Edge) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("Edge.UnmarshalJSON: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("Edge.UnmarshalJSON: want 2 endpoints, got %d: %w", len(pair), ErrBadLabel)
	}
	e.From, e.To = pair[0], pair[1]

	return nil
}

// Less is the canonical edge order: by From, then by To.
// Every package that needs a fixed ordering of variables uses it.
func Less(a, b Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// SortEdges returns a sorted copy of edges under Less; the input is untouched.
// Complexity: O(E log E).
func SortEdges(edges []Edge) []Edge {
	out := append([]Edge(nil), edges...)
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })

	return out
}
