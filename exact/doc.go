// SPDX-License-Identifier: MIT

// Package exact provides the exact integer arithmetic used by the tableau,
// the cut generator and the dependence layer.
//
// What:
//
//   - Arbitrary precision integers backed by math/big (the default policy).
//   - A Fixed64 policy that emulates a fixed-width backend: every value the
//     solver produces must fit in a signed 64-bit word, otherwise the solve
//     aborts with ErrArithmeticOverflow.
//   - Small helpers shared by every layer above: floor division, canonical
//     non-negative remainders, vector gcd reduction and modular inverses.
//
// Why:
//
//   - Polyhedral questions must be answered exactly. A single rounding error
//     in a pivot flips the sign of a row and therefore the shape of the
//     parametric solution tree.
//
// Complexity:
//
//   - All helpers are linear in the vector length times the cost of one
//     big.Int operation on the operands involved.
//
// Errors:
//
//   - ErrArithmeticOverflow   value does not fit under the Fixed64 policy
//   - ErrDivisionByZero       zero divisor passed to FloorDiv / Mod
package exact
