// Package quast records the events of a parametric solve on an append-only
// tape and turns them into a quasi-affine selection tree (QUAST).
//
// A solve never builds the tree directly. It appends records (New, Div, Form,
// Value, List, If, Nil, Error) in prefix order to a Tape it owns; nested
// compatibility tests take a Mark, run, and Reset back to it so sibling
// branches never see each other's records. Build reads a tape range into an
// immutable *Node tree and may be called any number of times with different
// ReadOptions:
//
//   - Strip removes an internal big-parameter column, flagging leaves whose
//     value still depends on it as Unbounded;
//   - Negate and Shift give the alternate view used by maximisation and by
//     unrestricted variables (x = M - x' or x = x' - M);
//   - Simplify collapses If(Nil, Nil) into Nil.
//
// Tree shape:
//
//	Nil                      no solution under the current conditions
//	Error(code)              the solve gave up on this branch
//	NewParam(rank, div, n)   p_rank = floor(div) then n
//	If(cond, then, else)     cond(p) >= 0 ? then : else
//	List(forms [, duals])    leaf: one affine form per unknown
package quast
