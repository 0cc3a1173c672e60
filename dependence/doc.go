// Package dependence analyses data dependences between statement instances of
// a static control part (SCoP) by querying the pip solver.
//
// A Dependence carries its polyhedron over
//
//	[eq | source iterators | target iterators | parameters | const]
//
// and the analyses built on top of it are:
//
//   - ExtractLoop: per-depth distance/direction vectors (DDV) of every
//     dependence carried around a loop;
//   - Permutable: loop interchange legality from two DDV lists;
//   - PruneTransitively: removal of edges covered by a path of finer edges;
//   - CheckViolations: dependences broken by the statements' scattering;
//   - Annotate: common loop depth of each dependence.
//
// All analyses are sequential and deterministic. Solver failures are returned
// as errors and never leave a partially updated dependence list behind.
package dependence
