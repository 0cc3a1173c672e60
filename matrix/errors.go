// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Callers match with errors.Is; context is added
// with fmt.Errorf("ctx: %w", ErrX) at the boundary.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. appending a row of the wrong width or a constraint system whose width
	// does not match the declared variable/parameter counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadEqFlag indicates a constraint row whose first column is neither
	// 0 (equality) nor 1 (inequality).
	ErrBadEqFlag = errors.New("matrix: eq-flag must be 0 or 1")

	// ErrNilEntry indicates a nil *big.Int supplied as a matrix entry.
	ErrNilEntry = errors.New("matrix: nil entry")
)
