package qubo

import (
	"fmt"
	"math"
	"math/bits"
	"sort"

	"github.com/katalvlaran/cyclequbo/core"
)

const (
	// MaxExactVariables bounds ExactMinimum; 2^24 assignments take a few
	// seconds on commodity hardware.
	MaxExactVariables = 24

	// DegeneracyTolerance is the energy distance below which two states are
	// considered equally good.
	DegeneracyTolerance = 1e-9
)

// Minimum is the outcome of an exhaustive search.
type Minimum struct {
	// Energy is the lowest energy found.
	Energy float64

	// States lists every assignment within DegeneracyTolerance of Energy,
	// as sorted edge lists, ordered by their FormatState text.
	States [][]core.Edge
}

// ExactMinimum enumerates every assignment of q's variables and returns the
// lowest energy together with all degenerate minimum states. It serves as a
// reference sampler for small instances.
//
// Assignments are visited in Gray-code order so that consecutive states
// differ in one variable; each step updates the energy and the local fields
// in O(n). Candidate minima are re-scored with Energy at the end, so the
// reported energy carries no accumulated rounding.
//
// Errors:
//   - ErrTooManyVariables if q has more than MaxExactVariables variables.
//
// Complexity: O(n·2ⁿ) time, O(n²) space.
func ExactMinimum(q QUBO) (Minimum, error) {
	m, vars, err := ToDense(q)
	if err != nil {
		return Minimum{}, fmt.Errorf("ExactMinimum: %w", err)
	}
	n := len(vars)
	if n > MaxExactVariables {
		return Minimum{}, fmt.Errorf("ExactMinimum: n=%d > max=%d: %w", n, MaxExactVariables, ErrTooManyVariables)
	}

	// 1) Split the matrix into linear terms and symmetric couplings.
	diag := make([]float64, n)
	coup := make([][]float64, n)
	for i := range coup {
		coup[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return Minimum{}, fmt.Errorf("ExactMinimum: %w", err)
			}
			if i == j {
				diag[i] = v
				continue
			}
			coup[i][j] += v
			coup[j][i] += v
		}
	}

	// 2) Gray-code walk from the all-zero state (energy 0).
	var (
		x        = make([]bool, n)
		field    = make([]float64, n) // field[k] = Σ_{j≠k} coup[k][j]·x_j
		energy   float64
		best     float64
		mask     uint64
		bestMask = []uint64{0}
	)
	for step := uint64(1); step < uint64(1)<<n; step++ {
		k := bits.TrailingZeros64(step)
		sign := 1.0
		if x[k] {
			sign = -1.0
		}
		energy += sign * (diag[k] + field[k])
		x[k] = !x[k]
		mask ^= uint64(1) << k
		for j := 0; j < n; j++ {
			field[j] += sign * coup[j][k]
		}

		switch {
		case energy < best-DegeneracyTolerance:
			best = energy
			bestMask = append(bestMask[:0], mask)
		case energy <= best+DegeneracyTolerance:
			bestMask = append(bestMask, mask)
		}
	}

	// 3) Re-score candidates exactly and keep the true minima.
	type scored struct {
		state  []core.Edge
		energy float64
		text   string
	}
	cands := make([]scored, 0, len(bestMask))
	lowest := math.Inf(1)
	for _, bm := range bestMask {
		state := make([]core.Edge, 0, bits.OnesCount64(bm))
		for i := 0; i < n; i++ {
			if bm&(uint64(1)<<i) != 0 {
				state = append(state, vars[i])
			}
		}
		e := Energy(q, state)
		cands = append(cands, scored{state: state, energy: e, text: core.FormatState(state)})
		if e < lowest {
			lowest = e
		}
	}

	res := Minimum{Energy: lowest}
	sort.Slice(cands, func(i, j int) bool { return cands[i].text < cands[j].text })
	for _, c := range cands {
		if c.energy <= lowest+DegeneracyTolerance {
			res.States = append(res.States, c.state)
		}
	}

	return res, nil
}
