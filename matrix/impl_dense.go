// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Add return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Add: O(1); QuadraticForm: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"            // method tag used in error wrappers
	ctxSet  = "Set"           // method tag used in error wrappers
	ctxAdd  = "Add"           // method tag used in error wrappers
	ctxQuad = "QuadraticForm" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.Set(3,1): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Empty shapes are rejected with ErrBadShape.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix. Unlike NewDense it accepts n == 0,
// which represents a problem without variables.
// Complexity: O(n²).
func NewSquare(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: n, c: n, data: make([]float64, n*n)}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Non-finite values are rejected.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Add accumulates v into (row, col). Non-finite values are rejected.
func (m *Dense) Add(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAdd, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[off] += v

	return nil
}

// QuadraticForm returns xᵀ·M·x = Σ_i Σ_j x_i·M[i][j]·x_j.
// M must be square and len(x) must equal its order.
// For a 0/1 vector this is exactly the QUBO energy of the assignment.
// Complexity: O(n²).
func (m *Dense) QuadraticForm(x []float64) (float64, error) {
	if m.r != m.c {
		return 0, denseErrorf(ctxQuad, m.r, m.c, ErrNonSquare)
	}
	if len(x) != m.r {
		return 0, denseErrorf(ctxQuad, len(x), m.r, ErrDimensionMismatch)
	}

	var sum float64
	for i := 0; i < m.r; i++ { // fixed i-order for reproducible rounding
		if x[i] == 0 {
			continue // row contributes nothing
		}
		row := m.data[i*m.c : (i+1)*m.c]
		var acc float64
		for j, v := range row {
			acc += v * x[j]
		}
		sum += x[i] * acc
	}

	return sum, nil
}

// IsUpperTriangular reports whether every entry below the diagonal is zero.
func (m *Dense) IsUpperTriangular() bool {
	for i := 1; i < m.r; i++ {
		for j := 0; j < i && j < m.c; j++ {
			if m.data[i*m.c+j] != 0 {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[-1, 1.01]\n[0, -1]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
