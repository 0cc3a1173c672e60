// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the entry checks every consumer of a
//    constraint system performs (nil, width, eq-flags).
//  - Return wrapped sentinels so call sites can match with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Width → Flags.

package matrix

import "fmt"

// Constraint row flags (first column of every constraint row).
const (
	// EqualityFlag marks a row meaning "expression = 0".
	EqualityFlag = 0

	// InequalityFlag marks a row meaning "expression >= 0".
	InequalityFlag = 1
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateWidth ensures m has exactly width columns.
// Assumes m is not nil.
func ValidateWidth(m *Dense, width int) error {
	if m.c != width {
		return validatorErrorf(fmt.Sprintf("ValidateWidth: have %d want %d", m.c, width), ErrDimensionMismatch)
	}

	return nil
}

// ValidateEqFlags ensures the first column of every row is 0 or 1.
// Assumes m is not nil.
// Complexity: O(r).
func ValidateEqFlags(m *Dense) error {
	for i := 0; i < m.r; i++ {
		f := m.data[i*m.c]
		if !f.IsInt64() || (f.Int64() != EqualityFlag && f.Int64() != InequalityFlag) {
			return validatorErrorf(fmt.Sprintf("ValidateEqFlags: row %d", i), ErrBadEqFlag)
		}
	}

	return nil
}

// ValidateConstraints runs the composite check for a constraint system of the
// given total width (flag + coefficients + constant).
// Sequence: NotNil → Width → Flags.
func ValidateConstraints(m *Dense, width int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateWidth(m, width); err != nil {
		return err
	}

	return ValidateEqFlags(m)
}
