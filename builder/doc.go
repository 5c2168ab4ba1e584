// SPDX-License-Identifier: MIT

// Package builder generates test graphs for the cycle-partition problem:
// unions of disjoint directed cycles, optionally perturbed by random noise
// edges that the QUBO encoding must learn to leave out.
//
// Generation is composed from Constructor closures run in order by
// BuildGraph, each extending the edge list produced so far:
//
//	edges, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.HamiltonianCycles(2, 4), // 0→1→2→3→0, 4→5→6→7→4
//		builder.NoiseFraction(0.25),     // round(0.25·8·6) = 12 extra edges
//	)
//
// Constructors:
//
//	Cycle(start, n)                  start→…→start+n−1→start, n ≥ 3
//	HamiltonianCycles(count, length) count disjoint cycles, cycle j starts at j·length
//	Path(start, n)                   start→…→start+n−1, no cycle cover
//	Complete(start, n)               both directions between every pair
//	Noise(k)                         k new edges between existing vertices
//	NoiseFraction(p)                 Noise(round(p·n·(n−2)))
//
// Determinism: noise draws come only from the RNG set by WithSeed or
// WithRand; the same seed, constructors and order always give the same
// edge list. A stochastic constructor without an RNG fails with
// ErrNeedRandSource.
//
// Guarantees: the result of BuildGraph passes core.Check (no negative
// vertices, self-loops or duplicate edges); a violation surfaces as
// ErrConstructFailed.
//
// Errors: ErrTooFewVertices, ErrBadSize, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed; always wrapped with the
// constructor name, so branch with errors.Is.
package builder
