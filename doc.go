// Package cyclequbo turns directed cycle partitioning into a QUBO that a
// quantum annealer (or any binary quadratic sampler) can minimize, and checks
// the states that come back.
//
// 🚀 What is cyclequbo?
//
//	Given a directed graph, find vertex-disjoint directed cycles of length
//	three or more that together cover every vertex. Each edge becomes one
//	binary variable; the QUBO rewards active edges and penalizes
//		• two active edges leaving the same vertex
//		• two active edges entering the same vertex
//		• an active 2-cycle u→v→u
//
// Packages:
//
//	core/      - Edge, canonical order, variable labels "(u, v)" and their parser
//	qubo/      - Encode, Energy, dense xᵀQx form and exact minimization
//	partition/ - validate a state and decompose it into cycles
//	builder/   - disjoint Hamiltonian cycles plus seeded random noise edges
//	report/    - aggregate sampler output, frequency and runs-to-solution
//	matrix/    - small dense matrix used by qubo.ToDense
//
// Quick example:
//
//	    0 ──▶ 1
//	    ▲     │
//	    └─ 2 ◀┘
//
//	edges := []core.Edge{{0, 1}, {1, 2}, {2, 0}}
//	q := qubo.Encode(edges)
//	qubo.Energy(q, edges)           // -3
//	partition.IsValid(edges, edges) // true
//
// The cyclequbo command (cmd/cyclequbo) exposes the same steps on JSON files.
//
//	go install github.com/katalvlaran/cyclequbo/cmd/cyclequbo@latest
package cyclequbo
