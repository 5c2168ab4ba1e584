package qubo

import (
	"errors"
	"sort"

	"github.com/katalvlaran/cyclequbo/core"
)

var (
	// ErrTooManyVariables is returned by ExactMinimum when exhaustive search
	// over the problem would exceed MaxExactVariables binary variables.
	ErrTooManyVariables = errors.New("qubo: too many variables for exhaustive search")
)

// Key is an unordered pair of variables in canonical order: I is never
// greater than J under core.Less. Always build keys with NewKey.
type Key struct {
	I core.Edge
	J core.Edge
}

// NewKey returns the canonical key of the unordered pair {a, b}, so that
// NewKey(a, b) == NewKey(b, a).
func NewKey(a, b core.Edge) Key {
	if core.Less(b, a) {
		a, b = b, a
	}

	return Key{I: a, J: b}
}

// Diagonal reports whether the key holds a linear (single-variable) term.
func (k Key) Diagonal() bool {
	return k.I == k.J
}

// Labels returns the variable labels of the pair in canonical order.
func (k Key) Labels() (string, string) {
	return k.I.Label(), k.J.Label()
}

// QUBO maps canonical variable pairs to their coefficient. Each unordered
// pair is stored at most once; a missing pair means a zero coefficient.
type QUBO map[Key]float64

// add accumulates v into the canonical entry of {a, b}.
func (q QUBO) add(a, b core.Edge, v float64) {
	q[NewKey(a, b)] += v
}

// Coefficient returns the coefficient of {a, b} regardless of argument
// order; absent pairs yield 0.
func (q QUBO) Coefficient(a, b core.Edge) float64 {
	return q[NewKey(a, b)]
}

// Variables returns every variable mentioned by q, sorted by core.Less.
func (q QUBO) Variables() []core.Edge {
	seen := make(map[core.Edge]struct{}, len(q))
	for k := range q {
		seen[k.I] = struct{}{}
		seen[k.J] = struct{}{}
	}
	out := make([]core.Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return core.Less(out[i], out[j]) })

	return out
}

// Entry is one coefficient in list form, keyed by variable labels.
// This is the (label, label) → value shape samplers consume.
type Entry struct {
	I     string  `json:"i"`
	J     string  `json:"j"`
	Value float64 `json:"value"`
}

// Entries lists q sorted by (I, J) under core.Less.
// Complexity: O(|Q| log |Q|).
func (q QUBO) Entries() []Entry {
	keys := q.sortedKeys()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		li, lj := k.Labels()
		out[i] = Entry{I: li, J: lj, Value: q[k]}
	}

	return out
}

// sortedKeys returns the keys of q in canonical (I, J) order.
func (q QUBO) sortedKeys() []Key {
	keys := make([]Key, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sortKeys(keys)

	return keys
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].I != keys[b].I {
			return core.Less(keys[a].I, keys[b].I)
		}
		return core.Less(keys[a].J, keys[b].J)
	})
}

// Penalty is the per-vertex triple of penalty constants.
type Penalty struct {
	// A weighs pairs of out-edges; 0 when the vertex has at most one out-edge.
	A float64

	// B weighs pairs of in-edges; 0 when the vertex has at most one in-edge.
	B float64

	// C weighs a mutually reversed pair of edges (a 2-cycle) at the vertex.
	C float64
}
