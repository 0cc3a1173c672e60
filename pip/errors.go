// SPDX-License-Identifier: MIT

package pip

import "errors"

var (
	// ErrNilProblem is returned when Solve receives a nil *Problem or a nil Domain.
	ErrNilProblem = errors.New("pip: nil problem")

	// ErrBadDimensions indicates negative NVar/NParam, or NVar == 0.
	ErrBadDimensions = errors.New("pip: invalid problem dimensions")

	// ErrBigParamOutOfRange indicates a big-parameter index outside [0, NParam).
	ErrBigParamOutOfRange = errors.New("pip: big parameter out of range")

	// ErrContextWidth indicates a context whose width is not NParam+2.
	ErrContextWidth = errors.New("pip: context width mismatch")
)
