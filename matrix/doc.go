// SPDX-License-Identifier: MIT

// Package matrix provides the exact integer constraint matrices consumed by
// the solver and the dependence layer.
//
// What:
//
//   - Dense: a row-major matrix of *big.Int with bounds-checked accessors.
//   - Constraint layout helpers for the polyhedral convention
//     [eq-flag | output dims | input dims | local dims | parameters | constant],
//     where an eq-flag of 0 marks an equality (= 0) and 1 an inequality (>= 0).
//   - Validators that reject malformed systems at entry (wrong width, flags
//     outside {0,1}) so no algorithm ever sees undefined input.
//   - Structural operations used to assemble composite systems: row append,
//     column placement, equality.
//
// Why:
//
//   - Every polyhedron crossing a package boundary travels as a Dense. Keeping
//     one exact representation avoids conversions between layers.
//
// Errors:
//
//   - ErrBadShape          non-positive width or negative row count
//   - ErrOutOfRange        row/column index outside the matrix
//   - ErrDimensionMismatch incompatible widths
//   - ErrNilMatrix         nil receiver or argument
//   - ErrBadEqFlag         eq-flag column outside {0,1}
//
// All sentinels are matched with errors.Is; wrapping adds the method name.
package matrix
