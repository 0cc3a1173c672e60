// Package lvpoly is an exact parametric integer programming kernel together
// with the polyhedral dependence analysis built on top of it.
//
// What is lvpoly?
//
//	A deterministic, single-threaded library that brings together:
//		• Exact integers: arbitrary precision or emulated 64-bit overflow checks
//		• Tableau engine: lexicographic dual simplex pivots over big integers
//		• PIP solver: parametric lexmin/lexmax with Gomory cuts and case splits
//		• QUAST trees: tape-recorded solutions, rendered and evaluated
//		• Dependence analysis: DDV extraction, loop permutability,
//		  transitive pruning and schedule violation checks
//
// Everything is organized under these subpackages:
//
//	exact/      - big-integer helpers and the precision policy
//	matrix/     - constraint systems [eq | vars | params | const]
//	tableau/    - the simplex tableau and its pivot
//	quast/      - solution tape, tree builder and rendering
//	pip/        - Solve and Feasible, the parametric solver
//	dependence/ - analyses over the dependences of a SCoP
//	config/     - YAML configuration mapped onto solver and analysis options
//
// Quick example: the lexicographic minimum of {0 <= i <= n} for a parameter n
// of any sign is
//
//	if(p0 >= 0; [0]; nil)
//
// that is i = 0 when n >= 0 and no solution otherwise.
//
//	go get github.com/katalvlaran/lvpoly
package lvpoly
