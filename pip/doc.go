// Package pip is an exact parametric integer programming solver in the
// Feautrier style: it computes the lexicographic minimum (or maximum) of the
// integer points of a parametric polyhedron as a quasi-affine selection tree.
//
// Problem layout:
//
//	Domain  [eq | x_0 .. x_{n-1} | p_0 .. p_{m-1} | const]   one row per constraint
//	Context [eq | p_0 .. p_{m-1} | const]                    optional parameter domain
//
// eq is 0 for "expr = 0" and 1 for "expr >= 0". Unknowns are non-negative and
// parameters are non-negative unless WithUnrestrictedVars/WithUnrestrictedParams
// say otherwise.
//
// The solver runs a dual simplex with a lexicographic ratio test over an exact
// rational tableau. Rows whose sign depends on the parameters are settled by
// compatibility tests against the current context (small parameter-only
// integer problems solved by the same machinery) and, when both signs are
// possible, by a case split that becomes an If node. Integer solutions are
// reached with Gomory cuts; a cut whose fractional part depends on the
// parameters introduces a new parameter q = floor((β·p + γ)/D), recorded as a
// NewParam node.
//
// Every solve owns its tape and its tableaux: branches clone, compatibility
// tests Mark/Reset the tape, so nothing leaks between sibling branches and
// concurrent solves are independent.
//
// Usage:
//
//	dom := matrix.MustFromInt64(4,
//		[]int64{1, 1, 0, 0},  // i >= 0
//		[]int64{1, -1, 1, 0}, // n - i >= 0
//	)
//	tree, err := pip.Solve(&pip.Problem{Domain: dom, NVar: 1, NParam: 1},
//		pip.WithInteger(), pip.WithUnrestrictedParams())
//	// tree.String() == "if(p0 >= 0; [0]; nil)"
package pip
