// Package qubo encodes the cycle-partition problem of a directed graph as a
// QUBO (quadratic unconstrained binary optimization) problem and evaluates
// candidate states against it.
//
// One binary variable x_e exists per edge e. The objective is
//
//	E(x) = − Σ_e x_e                                       (reward)
//	     + Σ_v a_v · Σ_{e≠f ∈ out(v)} x_e·x_f              (≤ 1 out-edge)
//	     + Σ_v b_v · Σ_{e≠f ∈ in(v)}  x_e·x_f              (≤ 1 in-edge)
//	     + Σ_v ½c  · Σ_{(p,q),(q,p) ∋ v} x_(p,q)·x_(q,p)   (no 2-cycles)
//
// with a_v = 1+ε when v has more than one out-edge (else the term is
// omitted), b_v likewise for in-edges, and c = 2+ε. The ½ factor exists
// because a reversed pair is discovered from both of its endpoints. ε
// (DefaultEpsilon = 0.01) keeps every penalty strictly, but only slightly,
// above the reward the offending edges could earn.
//
// The lowest-energy states are therefore maximum-size edge selections with
// in/out degree ≤ 1 and no 2-cycles, i.e. unions of disjoint cycles of
// length ≥ 3. The encoding does NOT force every vertex to be covered;
// coverage is checked independently by package partition.
//
// Representation:
//
//	QUBO  map[Key]float64   // one entry per unordered variable pair
//	Key   {I, J core.Edge}  // canonical: !core.Less(J, I); I == J is diagonal
//
// Operations:
//
//	Encode(edges, opts...) QUBO               O(Σ_v deg(v)²)
//	Energy(q, state) float64                  O(|Q| + m log m)
//	ToDense(q) (*matrix.Dense, []core.Edge)   O(n² + |Q|)
//	ExactMinimum(q) (Minimum, error)          O(n·2ⁿ), n ≤ MaxExactVariables
//
// None of Encode, Energy or PenaltyConstants can fail: an empty graph
// encodes to an empty QUBO and pairs absent from a QUBO contribute zero.
package qubo
