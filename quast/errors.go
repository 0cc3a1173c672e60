// SPDX-License-Identifier: MIT

package quast

import "errors"

var (
	// ErrTapeCapacity is returned when a record would exceed the tape limit:
	// the solution is too complex for the configured budget. Fatal for a solve.
	ErrTapeCapacity = errors.New("quast: solution too complex (tape capacity exceeded)")

	// ErrMalformedTape indicates a truncated tape or a record out of place.
	ErrMalformedTape = errors.New("quast: malformed tape")

	// ErrBadMark indicates a Reset to a mark beyond the current tape length.
	ErrBadMark = errors.New("quast: bad tape mark")
)

// Code identifies why a solve emitted an Error leaf.
type Code int

const (
	// CodeCutLimit: the branch exceeded its integer cut budget.
	CodeCutLimit Code = 1
)

// String implements fmt.Stringer.
func (c Code) String() string {
	switch c {
	case CodeCutLimit:
		return "cut-limit"
	default:
		return "code?"
	}
}
