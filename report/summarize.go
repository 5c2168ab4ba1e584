package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/partition"
)

// Aggregate merges samples with the same set of active edges: occurrences
// are summed and energies averaged. Each merged state is sorted by
// core.Less with repeats removed. The result is ordered by energy, then by
// FormatState text.
//
// Complexity: O(S·m log m + S log S) for S samples of size m.
func Aggregate(samples []Sample) []Sample {
	type acc struct {
		state   []core.Edge
		text    string
		eSum    float64
		entries int
		occ     int
	}
	byText := make(map[string]*acc, len(samples))
	order := make([]*acc, 0, len(samples))
	for _, s := range samples {
		state := canonical(s.State)
		text := core.FormatState(state)
		a, ok := byText[text]
		if !ok {
			a = &acc{state: state, text: text}
			byText[text] = a
			order = append(order, a)
		}
		a.eSum += s.Energy
		a.entries++
		a.occ += s.Occurrences
	}
	sort.SliceStable(order, func(i, j int) bool {
		ei := order[i].eSum / float64(order[i].entries)
		ej := order[j].eSum / float64(order[j].entries)
		if ei != ej {
			return ei < ej
		}
		return order[i].text < order[j].text
	})

	out := make([]Sample, 0, len(order))
	for _, a := range order {
		out = append(out, Sample{State: a.state, Energy: a.eSum / float64(a.entries), Occurrences: a.occ})
	}

	return out
}

// Summarize aggregates samples, selects the lowest-energy states, validates
// each against reference and reports the fraction of reads that produced a
// valid partition.
//
// Errors:
//   - ErrNoSamples if samples is empty;
//   - ErrBadReads if numReads ≤ 0, an occurrence count is negative, or the
//     occurrences add up to more than numReads.
func Summarize(samples []Sample, reference []core.Edge, numReads int, opts ...Option) (Summary, error) {
	cfg := newConfig(opts...)

	// 1) Validate the read bookkeeping.
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrNoSamples)
	}
	if numReads <= 0 {
		return Summary{}, fmt.Errorf("Summarize: numReads=%d: %w", numReads, ErrBadReads)
	}
	total := 0
	for i, s := range samples {
		if s.Occurrences < 0 {
			return Summary{}, fmt.Errorf("Summarize: sample #%d occurrences=%d: %w", i, s.Occurrences, ErrBadReads)
		}
		total += s.Occurrences
	}
	if total > numReads {
		return Summary{}, fmt.Errorf("Summarize: occurrences=%d > numReads=%d: %w", total, numReads, ErrBadReads)
	}

	// 2) Lowest energy and its degenerate states.
	agg := Aggregate(samples)
	lowest := agg[0].Energy

	sum := Summary{
		RunID:        uuid.New(),
		NumReads:     numReads,
		LowestEnergy: lowest,
	}
	validReads := 0
	for _, s := range agg {
		if s.Energy > lowest+cfg.tolerance {
			break // sorted by energy
		}
		sum.LowestStates++
		cycles, ok := partition.Decompose(s.State, reference)
		if !ok {
			continue
		}
		validReads += s.Occurrences
		sum.Solutions = append(sum.Solutions, Solution{State: s.State, Cycles: cycles, Occurrences: s.Occurrences})
	}

	// 3) Success probability and the runs it implies.
	sum.Frequency = float64(validReads) / float64(numReads)
	sum.RunsToSolution, sum.Solvable = RunsToSolution(sum.Frequency, cfg.confidence)

	return sum, nil
}

// RunsToSolution returns how many independent runs with success
// probability p are needed to see at least one success with the given
// confidence: log(1−confidence)/log(1−p). It returns (0, true) for p ≥ 1 and
// (0, false) when p ≤ 0, where no number of runs suffices.
func RunsToSolution(p, confidence float64) (float64, bool) {
	switch {
	case p <= 0 || math.IsNaN(p):
		return 0, false
	case p >= 1:
		return 0, true
	}

	return math.Log(1-confidence) / math.Log(1-p), true
}

// canonical returns the sorted set of edges of state.
func canonical(state []core.Edge) []core.Edge {
	sorted := core.SortEdges(state)
	out := make([]core.Edge, 0, len(sorted))
	for _, e := range sorted {
		if n := len(out); n > 0 && out[n-1] == e {
			continue
		}
		out = append(out, e)
	}

	return out
}
