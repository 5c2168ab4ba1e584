// SPDX-License-Identifier: MIT
// Package: cyclequbo/builder
//
// impl_noise.go - Noise(k) and NoiseFraction(p) constructors.
//
// Model:
//   - Each draw picks a uniformly random source among the existing vertices
//     and a uniformly random different target; the pair is kept if it is not
//     an edge yet, otherwise the draw is repeated.
//   - No new vertices are introduced and self-loops never occur.
//
// Contract:
//   - k ≥ 0 (else ErrBadSize); k == 0 is a no-op and needs no RNG.
//   - At least 2 vertices (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - k must not exceed the number of free ordered pairs (else ErrConstructFailed).
//   - NoiseFraction: 0 ≤ p ≤ 1 (else ErrInvalidProbability); k = round(p·n·(n−2)).
//
// Complexity: O(E) setup plus an expected O(k·F/(F−k+1)) draws, F being the
// number of free ordered pairs.
//
// Determinism: draws index into the ascending vertex list, so a fixed seed
// gives the same edges regardless of input edge order.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cyclequbo/core"
)

const (
	methodNoise         = "Noise"
	methodNoiseFraction = "NoiseFraction"
	minNoiseVertices    = 2
	probMin             = 0.0
	probMax             = 1.0
)

// Noise returns a Constructor that appends k random edges between vertices
// already present in the graph.
func Noise(k int) Constructor {
	return func(edges []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		// 1) Validate parameters in priority order.
		if k < 0 {
			return nil, fmt.Errorf("%s: k=%d < 0: %w", methodNoise, k, ErrBadSize)
		}
		if k == 0 {
			return edges, nil
		}
		vertices := core.Vertices(edges)
		n := len(vertices)
		if n < minNoiseVertices {
			return nil, fmt.Errorf("%s: vertices=%d < min=%d: %w", methodNoise, n, minNoiseVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: rng is required: %w", methodNoise, ErrNeedRandSource)
		}

		// 2) Count free ordered pairs; loops do not occupy a usable pair.
		present := make(map[core.Edge]struct{}, len(edges)+k)
		taken := 0
		for _, e := range edges {
			if _, dup := present[e]; dup {
				continue
			}
			present[e] = struct{}{}
			if e.From != e.To {
				taken++
			}
		}
		if free := n*(n-1) - taken; k > free {
			return nil, fmt.Errorf("%s: k=%d > free pairs=%d: %w", methodNoise, k, free, ErrConstructFailed)
		}

		// 3) Rejection-sample distinct new edges.
		rng := cfg.rng
		for added := 0; added < k; {
			i := rng.Intn(n)
			j := rng.Intn(n - 1)
			if j >= i {
				j++ // skip the source itself
			}
			e := core.Edge{From: vertices[i], To: vertices[j]}
			if _, ok := present[e]; ok {
				continue
			}
			present[e] = struct{}{}
			edges = append(edges, e)
			added++
		}

		return edges, nil
	}
}

// NoiseFraction returns a Constructor that appends round(p·n·(n−2)) noise
// edges, n being the current vertex count. For a graph that is a cycle
// cover, n·(n−2) is exactly the number of absent non-loop edges, so p is
// the fraction of them that gets filled in.
func NoiseFraction(p float64) Constructor {
	return func(edges []core.Edge, cfg builderConfig) ([]core.Edge, error) {
		if math.IsNaN(p) || p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodNoiseFraction, p, probMin, probMax, ErrInvalidProbability)
		}
		n := core.VertexCount(edges)
		k := int(math.Round(p * float64(n) * float64(n-2)))
		if k < 0 {
			k = 0 // n < 2
		}

		out, err := Noise(k)(edges, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: p=%.6f: %w", methodNoiseFraction, p, err)
		}

		return out, nil
	}
}
