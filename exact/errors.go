// SPDX-License-Identifier: MIT

package exact

import "errors"

var (
	// ErrArithmeticOverflow is returned when a value produced under the Fixed64
	// policy does not fit in a signed 64-bit integer. It is fatal for a solve.
	ErrArithmeticOverflow = errors.New("exact: arithmetic overflow")

	// ErrDivisionByZero indicates a zero divisor in FloorDiv or Mod.
	ErrDivisionByZero = errors.New("exact: division by zero")

	// ErrUnknownPrecision is returned by ParsePrecision for an unrecognised name.
	ErrUnknownPrecision = errors.New("exact: unknown precision")
)
