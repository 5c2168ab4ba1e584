package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/partition"
)

// TestIsValid covers the accept/reject cases on two triangles 0-1-2 and 3-4-5.
func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		reference []core.Edge
		candidate []core.Edge
		want      bool
	}{
		{
			name:      "two triangles, bridge left out",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {0, 3}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}},
			want:      true,
		},
		{
			name:      "candidate has extra vertices",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}},
			want:      false,
		},
		{
			name:      "not all vertices covered",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {0, 3}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {2, 0}},
			want:      false,
		},
		{
			name:      "two out-edges at vertex 0",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {0, 3}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {0, 3}},
			want:      false,
		},
		{
			name:      "two in-edges at vertex 0",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {3, 0}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {3, 0}},
			want:      false,
		},
		{
			name:      "open path 0→1→2",
			reference: []core.Edge{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {5, 3}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {5, 3}},
			want:      false,
		},
		{
			name:      "2-cycle",
			reference: []core.Edge{{0, 1}, {1, 0}, {3, 4}, {4, 5}, {5, 3}},
			candidate: []core.Edge{{0, 1}, {1, 0}, {3, 4}, {4, 5}, {5, 3}},
			want:      false,
		},
		{
			name:      "self-loop",
			reference: []core.Edge{{0, 0}, {1, 2}, {2, 3}, {3, 1}},
			candidate: []core.Edge{{0, 0}, {1, 2}, {2, 3}, {3, 1}},
			want:      false,
		},
		{
			name:      "edges outside the reference are tolerated",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}},
			candidate: []core.Edge{{0, 2}, {2, 1}, {1, 0}},
			want:      true,
		},
		{
			name:      "duplicated edge",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {2, 0}},
			want:      false,
		},
		{
			name:      "figure eight through vertex 0",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}},
			want:      false,
		},
		{
			name:      "walk loops back before the start",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 1}},
			candidate: []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 1}},
			want:      false,
		},
		{
			name:      "single long cycle",
			reference: []core.Edge{{4, 1}, {1, 3}, {3, 0}, {0, 2}, {2, 4}, {1, 0}},
			candidate: []core.Edge{{4, 1}, {1, 3}, {3, 0}, {0, 2}, {2, 4}},
			want:      true,
		},
		{
			name: "empty candidate, empty reference",
			want: true,
		},
		{
			name:      "empty candidate, non-empty reference",
			reference: []core.Edge{{0, 1}, {1, 2}, {2, 0}},
			want:      false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, partition.IsValid(tc.candidate, tc.reference))
		})
	}
}

// TestDecompose_Cycles checks the extracted cycles and their order.
func TestDecompose_Cycles(t *testing.T) {
	reference := []core.Edge{{3, 4}, {4, 5}, {5, 3}, {0, 1}, {1, 2}, {2, 0}, {0, 3}}
	candidate := []core.Edge{{5, 3}, {1, 2}, {3, 4}, {2, 0}, {4, 5}, {0, 1}}

	p, ok := partition.Decompose(candidate, reference)
	require.True(t, ok)
	require.Len(t, p, 2)

	assert.Equal(t, []int{0, 1, 2}, p[0].Vertices)
	assert.Equal(t, []core.Edge{{0, 1}, {1, 2}, {2, 0}}, p[0].Edges)
	assert.Equal(t, []int{3, 4, 5}, p[1].Vertices)
	assert.Equal(t, []core.Edge{{3, 4}, {4, 5}, {5, 3}}, p[1].Edges)
	assert.Equal(t, 3, p[1].Len())

	assert.ElementsMatch(t, candidate, p.Edges())
}

// TestDecompose_Partial returns the cycles closed before the failure.
func TestDecompose_Partial(t *testing.T) {
	// 0-1-2 closes first; 3→4→3 is a 2-cycle; 6-7-8 is never reached.
	edges := []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 3}, {6, 7}, {7, 8}, {8, 6}}

	p, ok := partition.Decompose(edges, edges)
	assert.False(t, ok)
	require.Len(t, p, 1)
	assert.Equal(t, []int{0, 1, 2}, p[0].Vertices)

	// Vertex mismatch fails before any walk.
	p, ok = partition.Decompose(edges[:3], edges)
	assert.False(t, ok)
	assert.Empty(t, p)
}

// TestDecompose_Deterministic: input order never changes the result.
func TestDecompose_Deterministic(t *testing.T) {
	a := []core.Edge{{7, 9}, {9, 8}, {8, 7}, {1, 4}, {4, 2}, {2, 1}}
	b := []core.Edge{{2, 1}, {8, 7}, {1, 4}, {9, 8}, {4, 2}, {7, 9}}

	pa, okA := partition.Decompose(a, a)
	pb, okB := partition.Decompose(b, a)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, pa, pb)

	// Each cycle starts at its smallest vertex.
	assert.Equal(t, 1, pa[0].Vertices[0])
	assert.Equal(t, 7, pa[1].Vertices[0])
}

// TestIsValid_CycleUnion: any union of disjoint cycles of length ≥ 3 over
// the whole vertex set is valid against itself.
func TestIsValid_CycleUnion(t *testing.T) {
	var edges []core.Edge
	start := 0
	for _, n := range []int{3, 4, 5, 7} {
		for i := 0; i < n; i++ {
			edges = append(edges, core.Edge{From: start + i, To: start + (i+1)%n})
		}
		start += n
	}
	assert.True(t, partition.IsValid(edges, edges))

	p, ok := partition.Decompose(edges, edges)
	require.True(t, ok)
	require.Len(t, p, 4)
	for i, n := range []int{3, 4, 5, 7} {
		assert.Equal(t, n, p[i].Len())
	}
}

func BenchmarkDecompose(b *testing.B) {
	const cycles, length = 200, 5
	edges := make([]core.Edge, 0, cycles*length)
	for c := 0; c < cycles; c++ {
		base := c * length
		for i := 0; i < length; i++ {
			edges = append(edges, core.Edge{From: base + i, To: base + (i+1)%length})
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := partition.Decompose(edges, edges); !ok {
			b.Fatal("expected a valid partition")
		}
	}
}
