package report

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/partition"
)

// Sentinel errors.
var (
	// ErrBadReads indicates a non-positive read count, a negative occurrence
	// count, or occurrences that add up to more than the reads.
	ErrBadReads = errors.New("report: invalid read counts")

	// ErrNoSamples indicates an empty sample set.
	ErrNoSamples = errors.New("report: no samples")
)

// Sample is one distinct state returned by a sampler.
type Sample struct {
	// State lists the active variables (edges).
	State []core.Edge `json:"state"`

	// Energy is the QUBO energy of State.
	Energy float64 `json:"energy"`

	// Occurrences is how many reads ended in State.
	Occurrences int `json:"occurrences"`
}

// Solution is a lowest-energy state that is a valid cycle partition.
type Solution struct {
	State       []core.Edge         `json:"state"`
	Cycles      partition.Partition `json:"cycles"`
	Occurrences int                 `json:"occurrences"`
}

// Summary is the outcome of Summarize.
type Summary struct {
	// RunID identifies this summary in logs and output files.
	RunID uuid.UUID `json:"run_id"`

	NumReads     int     `json:"num_reads"`
	LowestEnergy float64 `json:"lowest_energy"`

	// LowestStates counts the distinct degenerate lowest-energy states,
	// valid or not.
	LowestStates int `json:"lowest_states"`

	// Frequency is the fraction of reads that ended in a valid lowest state.
	Frequency float64 `json:"frequency"`

	// Solutions lists the valid lowest states in Aggregate order.
	Solutions []Solution `json:"solutions"`

	// RunsToSolution is the number of runs needed to hit a solution with
	// the configured confidence; meaningful only when Solvable is true.
	RunsToSolution float64 `json:"runs_to_solution"`
	Solvable       bool    `json:"solvable"`
}
