package qubo

import (
	"github.com/katalvlaran/cyclequbo/core"
)

const (
	// rewardCoefficient is the linear term of every edge variable (x² = x).
	rewardCoefficient = -1.0

	// degreePenaltyBase and shortCyclePenaltyBase are the penalty constants
	// before the ε margin is added: 1 dominates the reward of one extra edge,
	// 2 the reward of a whole reversed pair.
	degreePenaltyBase     = 1.0
	shortCyclePenaltyBase = 2.0

	// shortCycleShare is the fraction of c charged per endpoint; a reversed
	// pair is found once from each of its two endpoints.
	shortCycleShare = 0.5
)

// PenaltyConstants returns the (a_v, b_v, c) triple of every vertex of edges.
//
//   - A = 1+eps iff v has more than one out-edge, else 0.
//   - B = 1+eps iff v has more than one in-edge, else 0.
//   - C = 2+eps for every vertex.
//
// Complexity: O(V·E).
func PenaltyConstants(edges []core.Edge, eps float64) map[int]Penalty {
	verts := core.Vertices(edges)
	out := make(map[int]Penalty, len(verts))
	for _, v := range verts {
		var p Penalty
		if len(core.EdgesOut(edges, v)) > 1 {
			p.A = degreePenaltyBase + eps
		}
		if len(core.EdgesIn(edges, v)) > 1 {
			p.B = degreePenaltyBase + eps
		}
		p.C = shortCyclePenaltyBase + eps
		out[v] = p
	}

	return out
}

// Encode builds the QUBO whose minimum-energy states are maximum unions of
// vertex-disjoint directed cycles of length ≥ 3 drawn from edges.
//
// Steps:
//  1. Reward: −1 on the diagonal of every edge.
//  2. Per vertex v with a_v ≠ 0: +a_v on every unordered pair of out-edges.
//  3. Per vertex v with b_v ≠ 0: +b_v on every unordered pair of in-edges.
//  4. Per vertex v: +½c on every unordered pair of incident edges that are
//     reverses of each other.
//
// Zero coefficients are never emitted. Terms that land on the same unordered
// pair are merged into its single canonical entry. An empty edge list yields
// an empty QUBO.
//
// Complexity: O(V·E + Σ_v deg(v)²) time, O(|Q|) space.
func Encode(edges []core.Edge, opts ...Option) QUBO {
	cfg := newConfig(opts...)
	q := make(QUBO, len(edges))

	// 1) Reward term.
	for _, e := range edges {
		q.add(e, e, rewardCoefficient)
	}

	penalties := PenaltyConstants(edges, cfg.epsilon)
	for _, v := range core.Vertices(edges) {
		p := penalties[v]

		// 2) At most one out-edge.
		if p.A != 0 {
			addPairs(q, core.EdgesOut(edges, v), p.A)
		}

		// 3) At most one in-edge.
		if p.B != 0 {
			addPairs(q, core.EdgesIn(edges, v), p.B)
		}

		// 4) No cycles of length two.
		incident := core.EdgesIncident(edges, v)
		for i := 0; i < len(incident); i++ {
			for j := i + 1; j < len(incident); j++ {
				if incident[i] == incident[j].Reverse() {
					q.add(incident[i], incident[j], shortCycleShare*p.C)
				}
			}
		}
	}

	return q
}

// addPairs adds w to every unordered pair of distinct positions in group.
func addPairs(q QUBO, group []core.Edge, w float64) {
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			q.add(group[i], group[j], w)
		}
	}
}
