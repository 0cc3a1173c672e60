// SPDX-License-Identifier: MIT

package dependence

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpoly/matrix"
)

// Kind is the dependence type, named after the access pair it links.
type Kind uint8

const (
	// RAW: write then read (flow).
	RAW Kind = iota
	// WAR: read then write (anti).
	WAR
	// WAW: write then write (output).
	WAW
	// RAR: read then read (input).
	RAR
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case RAW:
		return "RAW"
	case WAR:
		return "WAR"
	case WAW:
		return "WAW"
	case RAR:
		return "RAR"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ReadsAtSource reports whether the source access is a read.
func (k Kind) ReadsAtSource() bool { return k == WAR || k == RAR }

// ReadsAtTarget reports whether the target access is a read.
func (k Kind) ReadsAtTarget() bool { return k == RAW || k == RAR }

// Statement is one statement of a SCoP.
type Statement struct {
	// Depth is the number of enclosing loops (iterators).
	Depth int

	// Loops lists the enclosing loop identifiers, outermost first.
	Loops []int

	// Scattering rows are [eq | schedule dims (NScatt) | iterators | params | const];
	// optional, only CheckViolations reads it.
	Scattering *matrix.Dense
	NScatt     int
}

// Scop is the analysed program region. Statements are in textual order; a
// statement is referred to by its index.
type Scop struct {
	NParam     int
	Context    *matrix.Dense // [eq | params | const], optional
	Statements []*Statement
}

// Dependence links instances of Source to instances of Target.
type Dependence struct {
	ID                   int
	Source, Target       int
	Kind                 Kind
	SourceRef, TargetRef int
	ArrayID              int

	// Domain rows are [eq | source iterators | target iterators | params | const].
	Domain *matrix.Dense

	// Depth is the common loop depth of the endpoints (written by Annotate).
	Depth int
	// Valid is false once CheckViolations found the dependence violated.
	Valid bool
}

// String implements fmt.Stringer.
func (d *Dependence) String() string {
	return fmt.Sprintf("dep#%d %s S%d->S%d array %d", d.ID, d.Kind, d.Source, d.Target, d.ArrayID)
}

// DirType is the per-depth summary of a dependence distance t - s.
type DirType uint8

const (
	// Unknown: no direction could be proven feasible.
	Unknown DirType = iota
	// Eq: the distance is zero.
	Eq
	// Lt: the distance is positive (source iteration before target).
	Lt
	// Gt: the distance is negative.
	Gt
	// Star: both signs occur.
	Star
	// Scalar: the distance is the constant Value.
	Scalar
)

// Component is one DDV entry.
type Component struct {
	Type  DirType
	Value int64 // Scalar only
}

// String renders the component as "=", "<", ">", "*", "?" or the scalar.
func (c Component) String() string {
	switch c.Type {
	case Eq:
		return "="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Star:
		return "*"
	case Scalar:
		return fmt.Sprintf("%d", c.Value)
	default:
		return "?"
	}
}

// positive reports a component forcing a positive distance.
func (c Component) positive() bool { return c.Type == Lt || (c.Type == Scalar && c.Value > 0) }

// negative reports a component forcing a negative distance.
func (c Component) negative() bool { return c.Type == Gt || (c.Type == Scalar && c.Value < 0) }

// DDV is the distance/direction vector of one dependence around one loop.
type DDV struct {
	DepID      int
	Kind       Kind
	LoopID     int
	Components []Component
}

// String renders "[2, *]".
func (v DDV) String() string {
	parts := make([]string, len(v.Components))
	for i, c := range v.Components {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Violation reports that dependence DepID is broken at scattering dimension Dim.
type Violation struct {
	DepID int
	Dim   int
}
