// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix used to export
// QUBO problems in the upper-triangular "Q matrix" form consumed by samplers
// and by the exhaustive reference solver.
//
// What & Why:
//   - A QUBO over n binary variables is the quadratic form E(x) = xᵀ·Q·x with
//     Q upper-triangular: Q[i][i] is the linear coefficient of x_i and Q[i][j]
//     (i<j) the coupling between x_i and x_j.
//   - Dense keeps a single flat buffer (offset = i*cols + j), so QuadraticForm
//     is a tight double loop with no map lookups.
//
// Contracts:
//   - At/Set/Add never panic; out-of-range indices return ErrOutOfRange.
//   - Set/Add reject NaN/±Inf with ErrNaNInf; coefficients must be finite.
//   - NewDense forbids empty shapes (ErrBadShape); NewSquare accepts n == 0,
//     which is the matrix of the empty QUBO.
//
// Complexity:
//   - NewDense/NewSquare: O(r*c) zero-init; At/Set/Add: O(1);
//     QuadraticForm: O(n²); String: O(r*c).
package matrix
