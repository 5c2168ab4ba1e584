// File: methods_vertices.go
// Role: vertex extraction over an edge list.
//
// Determinism:
//   - Vertices() returns identifiers sorted ascending, so callers that need
//     a stable traversal order (the partition validator, matrix export) can
//     rely on it directly.
package core

import "sort"

// Vertices returns the set of endpoints of edges, sorted ascending.
// An empty edge list yields an empty (nil) result.
//
// Complexity: O(E + V log V) time, O(V) space.
func Vertices(edges []Edge) []int {
	if len(edges) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(edges))
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		for _, v := range [2]int{e.From, e.To} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of distinct endpoints of edges.
func VertexCount(edges []Edge) int {
	return len(Vertices(edges))
}

// SameVertices reports whether two edge lists span exactly the same vertex set.
//
// Complexity: O((E1+E2) log V).
func SameVertices(a, b []Edge) bool {
	va, vb := Vertices(a), Vertices(b)
	if len(va) != len(vb) {
		return false
	}
	for i := range va {
		if va[i] != vb[i] {
			return false
		}
	}

	return true
}
