// SPDX-License-Identifier: MIT

// Package tableau implements the rational simplex tableau of the parametric
// solver and its pivot engine.
//
// What:
//
//   - Tableau: ordered rows over nvar variable columns, nparam parameter
//     columns and one constant column. Each row is an integer vector plus one
//     shared positive denominator, always gcd-reduced. The first nvar rows are
//     the unknowns; the rest are materialized constraints.
//   - Unit rows: a row equal to one non-basic variable is stored as a tag and
//     a column index only, and materialized the first time a pivot touches it.
//   - Sign tags: Unit, Plus, Minus, Zero, Unknown, Critic. Pivot recomputes
//     the quick tag of every row it modifies from its parameter part.
//   - Pivot: lexicographic dual-simplex ratio test by cross-multiplication
//     (no rational division), exact elimination, gcd reduction.
//   - Expand: copy-grow by rows and/or parameter columns; old storage is
//     simply abandoned.
//
// Why:
//
//   - Keeping the variable rows first makes every column lexico-positive, so
//     the dual simplex reaches the lexicographic minimum of the unknowns.
//
// Complexity:
//
//   - Pivot: O(R·W) big-integer operations for R rows of width W, plus
//     O(R·V) comparisons for the ratio test over V variable columns.
//
// Errors:
//
//   - ErrPivotOnUnit        pivot requested on a unit row
//   - ErrRowWidth           appended row has the wrong width
//   - ErrBadDenominator     non-positive denominator
//   - exact.ErrArithmeticOverflow under the Fixed64 precision policy
package tableau
