// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All methods return these sentinels (possibly wrapped with call-site
// context via %w); callers and tests match them with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes,
	// e.g. a vector whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
