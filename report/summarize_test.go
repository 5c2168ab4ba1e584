package report_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/report"
)

// mustState parses a sampler label list.
func mustState(t *testing.T, s string) []core.Edge {
	t.Helper()
	edges, err := core.ParseState(s)
	require.NoError(t, err)
	return edges
}

// TestSummarize_OneSolution: only the lowest state counts, and it is valid.
func TestSummarize_OneSolution(t *testing.T) {
	samples := []report.Sample{
		{State: mustState(t, "['(1, 2)', '(2, 3)', '(3, 1)']"), Energy: -3, Occurrences: 80},
		{State: mustState(t, "['(1, 2)', '(2, 3)']"), Energy: -2, Occurrences: 15},
		{State: mustState(t, "['(1, 2)', '(3, 1)']"), Energy: -2, Occurrences: 5},
	}
	reference := []core.Edge{{1, 2}, {2, 3}, {3, 1}, {3, 2}}

	sum, err := report.Summarize(samples, reference, 100)
	require.NoError(t, err)

	assert.Equal(t, 0.80, sum.Frequency)
	assert.Equal(t, -3.0, sum.LowestEnergy)
	assert.Equal(t, 1, sum.LowestStates)
	require.Len(t, sum.Solutions, 1)
	assert.Equal(t, []core.Edge{{1, 2}, {2, 3}, {3, 1}}, sum.Solutions[0].State)
	assert.Equal(t, 80, sum.Solutions[0].Occurrences)
	require.Len(t, sum.Solutions[0].Cycles, 1)
	assert.Equal(t, []int{1, 2, 3}, sum.Solutions[0].Cycles[0].Vertices)
	assert.NotEqual(t, uuid.Nil, sum.RunID)
}

// TestSummarize_TwoSolutions: degenerate lowest states both count.
func TestSummarize_TwoSolutions(t *testing.T) {
	samples := []report.Sample{
		{State: mustState(t, "['(1, 2)', '(2, 3)', '(3, 1)', '(4, 5)', '(5, 6)', '(6, 4)']"), Energy: -6, Occurrences: 30},
		{State: mustState(t, "['(1, 2)', '(2, 3)', '(3, 4)', '(4, 5)', '(5, 6)', '(6, 1)']"), Energy: -6, Occurrences: 50},
		{State: mustState(t, "['(1, 2)', '(2, 3)']"), Energy: -2, Occurrences: 20},
	}
	reference := []core.Edge{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}, {3, 4}, {6, 1}}

	sum, err := report.Summarize(samples, reference, 100)
	require.NoError(t, err)

	assert.InDelta(t, 0.80, sum.Frequency, 1e-12)
	assert.Equal(t, 2, sum.LowestStates)
	require.Len(t, sum.Solutions, 2)
	assert.Equal(t, []core.Edge{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}}, sum.Solutions[0].State)
	assert.Equal(t, []core.Edge{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1}}, sum.Solutions[1].State)
	assert.Len(t, sum.Solutions[0].Cycles, 2)
	assert.Len(t, sum.Solutions[1].Cycles, 1)
	assert.True(t, sum.Solvable)
	assert.InDelta(t, math.Log(0.01)/math.Log(0.2), sum.RunsToSolution, 1e-12)
}

// TestSummarize_InvalidLowest: a lowest state that is not a partition
// yields zero frequency and no solution.
func TestSummarize_InvalidLowest(t *testing.T) {
	reference := []core.Edge{{0, 1}, {1, 2}, {2, 0}, {2, 3}}
	samples := []report.Sample{
		{State: []core.Edge{{0, 1}, {1, 2}, {2, 3}}, Energy: -3, Occurrences: 6},
		{State: []core.Edge{{0, 1}, {1, 2}, {2, 0}}, Energy: -3, Occurrences: 4},
	}
	sum, err := report.Summarize(samples, reference, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.LowestStates)
	assert.Empty(t, sum.Solutions)
	assert.Zero(t, sum.Frequency)
	assert.False(t, sum.Solvable)
}

// TestSummarize_Tolerance widens the degeneracy window.
func TestSummarize_Tolerance(t *testing.T) {
	reference := []core.Edge{{0, 1}, {1, 2}, {2, 0}}
	samples := []report.Sample{
		{State: []core.Edge{{0, 1}, {1, 2}}, Energy: -3.0000001, Occurrences: 1},
		{State: reference, Energy: -3, Occurrences: 1},
	}

	strict, err := report.Summarize(samples, reference, 2)
	require.NoError(t, err)
	assert.Empty(t, strict.Solutions)

	loose, err := report.Summarize(samples, reference, 2, report.WithTolerance(1e-3))
	require.NoError(t, err)
	require.Len(t, loose.Solutions, 1)
	assert.Equal(t, 0.5, loose.Frequency)
}

// TestSummarize_Errors covers the read bookkeeping checks.
func TestSummarize_Errors(t *testing.T) {
	one := []report.Sample{{State: []core.Edge{{0, 1}}, Energy: -1, Occurrences: 3}}

	_, err := report.Summarize(nil, nil, 10)
	assert.True(t, errors.Is(err, report.ErrNoSamples))

	for _, reads := range []int{0, -1, 2} {
		_, err = report.Summarize(one, nil, reads)
		assert.True(t, errors.Is(err, report.ErrBadReads), "reads=%d", reads)
	}

	neg := []report.Sample{{State: []core.Edge{{0, 1}}, Occurrences: -1}}
	_, err = report.Summarize(neg, nil, 10)
	assert.True(t, errors.Is(err, report.ErrBadReads))
}

// TestAggregate merges equal states regardless of order and repeats.
func TestAggregate(t *testing.T) {
	got := report.Aggregate([]report.Sample{
		{State: []core.Edge{{1, 2}, {0, 1}}, Energy: -2, Occurrences: 1},
		{State: []core.Edge{{2, 0}, {0, 1}, {1, 2}}, Energy: -3, Occurrences: 2},
		{State: []core.Edge{{0, 1}, {1, 2}, {1, 2}}, Energy: -2, Occurrences: 4},
		{State: []core.Edge{{1, 2}, {2, 0}}, Energy: -2, Occurrences: 1},
	})
	require.Len(t, got, 3)

	assert.Equal(t, []core.Edge{{0, 1}, {1, 2}, {2, 0}}, got[0].State)
	assert.Equal(t, -3.0, got[0].Energy)

	assert.Equal(t, []core.Edge{{0, 1}, {1, 2}}, got[1].State)
	assert.Equal(t, 5, got[1].Occurrences)
	assert.Equal(t, -2.0, got[1].Energy)

	assert.Equal(t, []core.Edge{{1, 2}, {2, 0}}, got[2].State)

	assert.Empty(t, report.Aggregate(nil))
}

// TestRunsToSolution covers the closed form and both edges.
func TestRunsToSolution(t *testing.T) {
	runs, ok := report.RunsToSolution(0.5, 0.99)
	assert.True(t, ok)
	assert.InDelta(t, math.Log(0.01)/math.Log(0.5), runs, 1e-12)

	runs, ok = report.RunsToSolution(1, 0.99)
	assert.True(t, ok)
	assert.Zero(t, runs)

	_, ok = report.RunsToSolution(0, 0.99)
	assert.False(t, ok)
}

// TestOptions_Panic on meaningless values.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { report.WithTolerance(-1) })
	assert.Panics(t, func() { report.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { report.WithConfidence(0) })
	assert.Panics(t, func() { report.WithConfidence(1) })
	assert.NotPanics(t, func() { report.WithConfidence(0.9) })
}
