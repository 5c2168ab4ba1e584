// File: builder_impl_test.go
// Package builder_test contains functional tests for the constructors,
// verifying topology, counts, determinism and error classes.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclequbo/builder"
	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/partition"
)

// TestCycle checks edge order and offsets.
func TestCycle(t *testing.T) {
	t.Parallel()

	edges, err := builder.BuildGraph(nil, builder.Cycle(5, 3))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{5, 6}, {6, 7}, {7, 5}}, edges)
}

// TestHamiltonianCycles: cycle j starts at j·length and the result is a
// valid partition of itself.
func TestHamiltonianCycles(t *testing.T) {
	t.Parallel()

	edges, err := builder.BuildGraph(nil, builder.HamiltonianCycles(2, 4))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
	}, edges)
	assert.True(t, partition.IsValid(edges, edges))
}

// TestPath: a path is a valid graph but never a cycle partition.
func TestPath(t *testing.T) {
	t.Parallel()

	edges, err := builder.BuildGraph(nil, builder.Path(2, 4))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{2, 3}, {3, 4}, {4, 5}}, edges)
	assert.False(t, partition.IsValid(edges, edges))
}

// TestComplete: every pair carries both directions, in (i,j) order.
func TestComplete(t *testing.T) {
	t.Parallel()

	edges, err := builder.BuildGraph(nil, builder.Complete(0, 3))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{0, 1}, {1, 0}, {0, 2}, {2, 0}, {1, 2}, {2, 1}}, edges)

	// Both orientations of the triangle are cycle covers.
	assert.True(t, partition.IsValid([]core.Edge{{0, 1}, {1, 2}, {2, 0}}, edges))
	assert.True(t, partition.IsValid([]core.Edge{{0, 2}, {2, 1}, {1, 0}}, edges))
}

// TestNoise adds distinct non-loop edges over existing vertices only.
func TestNoise(t *testing.T) {
	t.Parallel()

	base, err := builder.BuildGraph(nil, builder.HamiltonianCycles(3, 3))
	require.NoError(t, err)

	edges, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.HamiltonianCycles(3, 3),
		builder.Noise(10),
	)
	require.NoError(t, err)
	require.Len(t, edges, len(base)+10)

	// The generated cycles come first and untouched.
	assert.Equal(t, base, edges[:len(base)])
	assert.Equal(t, core.Vertices(base), core.Vertices(edges))
	require.NoError(t, core.Check(edges))

	// The cycle cover is still a valid partition of the noisy graph.
	assert.True(t, partition.IsValid(base, edges))
}

// TestNoise_Deterministic: equal seeds give equal graphs.
func TestNoise_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []core.Edge {
		edges, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.HamiltonianCycles(2, 5),
			builder.NoiseFraction(0.3),
		)
		require.NoError(t, err)
		return edges
	}
	assert.Equal(t, build(3), build(3))
	assert.NotEqual(t, build(3), build(4))
}

// TestNoise_Saturate fills every free pair exactly.
func TestNoise_Saturate(t *testing.T) {
	t.Parallel()

	// 4 vertices: 12 ordered pairs, 4 taken by the cycle.
	edges, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(5)},
		builder.Cycle(0, 4),
		builder.NoiseFraction(1),
	)
	require.NoError(t, err)
	assert.Len(t, edges, 12)
	require.NoError(t, core.Check(edges))
}

// TestNoiseFraction_Count follows k = round(p·n·(n−2)).
func TestNoiseFraction_Count(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		p    float64
		want int
	}{
		{0, 0},
		{0.1, 5},   // 0.1·8·6 = 4.8
		{0.25, 12}, // 0.25·8·6
		{0.5, 24},
	} {
		edges, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(1)},
			builder.HamiltonianCycles(2, 4),
			builder.NoiseFraction(tc.p),
		)
		require.NoError(t, err)
		assert.Len(t, edges, 8+tc.want, "p=%v", tc.p)
	}
}

// TestBuilders_Errors asserts sentinel classes with errors.Is.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"cycle too short", nil, []builder.Constructor{builder.Cycle(0, 2)}, builder.ErrTooFewVertices},
		{"cycle negative start", nil, []builder.Constructor{builder.Cycle(-1, 3)}, builder.ErrBadSize},
		{"no cycles", nil, []builder.Constructor{builder.HamiltonianCycles(0, 3)}, builder.ErrTooFewVertices},
		{"cycles too short", nil, []builder.Constructor{builder.HamiltonianCycles(2, 2)}, builder.ErrTooFewVertices},
		{"negative noise", seeded, []builder.Constructor{builder.Cycle(0, 3), builder.Noise(-1)}, builder.ErrBadSize},
		{"noise on empty graph", seeded, []builder.Constructor{builder.Noise(1)}, builder.ErrTooFewVertices},
		{"noise without rng", nil, []builder.Constructor{builder.Cycle(0, 3), builder.Noise(1)}, builder.ErrNeedRandSource},
		{"too much noise", seeded, []builder.Constructor{builder.Cycle(0, 3), builder.Noise(4)}, builder.ErrConstructFailed},
		{"fraction above 1", seeded, []builder.Constructor{builder.Cycle(0, 3), builder.NoiseFraction(1.5)}, builder.ErrInvalidProbability},
		{"fraction below 0", seeded, []builder.Constructor{builder.Cycle(0, 3), builder.NoiseFraction(-0.1)}, builder.ErrInvalidProbability},
		{"path too short", nil, []builder.Constructor{builder.Path(0, 1)}, builder.ErrTooFewVertices},
		{"path negative start", nil, []builder.Constructor{builder.Path(-2, 3)}, builder.ErrBadSize},
		{"complete too small", nil, []builder.Constructor{builder.Complete(0, 1)}, builder.ErrTooFewVertices},
		{"cycle inside complete", nil, []builder.Constructor{builder.Complete(0, 3), builder.Cycle(0, 3)}, builder.ErrConstructFailed},
		{"nil constructor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"overlapping cycles", nil, []builder.Constructor{builder.Cycle(0, 3), builder.Cycle(0, 3)}, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			edges, err := builder.BuildGraph(tc.opts, tc.cons...)
			require.Error(t, err)
			assert.Nil(t, edges)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestNoise_ZeroNeedsNoRand: k == 0 is deterministic.
func TestNoise_ZeroNeedsNoRand(t *testing.T) {
	t.Parallel()

	edges, err := builder.BuildGraph(nil, builder.Cycle(0, 3), builder.Noise(0), builder.NoiseFraction(0))
	require.NoError(t, err)
	assert.Len(t, edges, 3)
}
