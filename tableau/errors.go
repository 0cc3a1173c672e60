// SPDX-License-Identifier: MIT

package tableau

import "errors"

var (
	// ErrPivotOnUnit indicates a pivot on a row that is a non-basic variable.
	ErrPivotOnUnit = errors.New("tableau: pivot on unit row")

	// ErrRowWidth indicates an appended row whose width differs from the tableau width.
	ErrRowWidth = errors.New("tableau: row width mismatch")

	// ErrBadDenominator indicates a zero or negative row denominator.
	ErrBadDenominator = errors.New("tableau: denominator must be positive")

	// ErrRowIndex indicates a row index outside the tableau.
	ErrRowIndex = errors.New("tableau: row index out of range")
)
