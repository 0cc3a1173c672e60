// SPDX-License-Identifier: MIT

package dependence

import "errors"

var (
	// ErrNilScop is returned when a nil *Scop is passed.
	ErrNilScop = errors.New("dependence: nil scop")

	// ErrNilDependence indicates a nil entry or a dependence without a domain.
	ErrNilDependence = errors.New("dependence: nil dependence")

	// ErrUnknownStatement indicates a dependence endpoint outside the scop.
	ErrUnknownStatement = errors.New("dependence: unknown statement")

	// ErrDomainWidth indicates a dependence polyhedron whose width does not
	// match its endpoints' depths and the scop parameters.
	ErrDomainWidth = errors.New("dependence: domain width mismatch")

	// ErrScatteringMismatch indicates endpoints without scattering or with
	// scattering of different dimensionality.
	ErrScatteringMismatch = errors.New("dependence: scattering mismatch")
)
