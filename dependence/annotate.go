// SPDX-License-Identifier: MIT

package dependence

// Annotate writes the common loop depth of its endpoints into every
// dependence. On error no dependence is modified.
func Annotate(scop *Scop, deps []*Dependence) error {
	if scop == nil {
		return ErrNilScop
	}
	depth := make([]int, len(deps))
	for k, dep := range deps {
		src, tgt, err := endpoints(scop, dep)
		if err != nil {
			return err
		}
		depth[k] = commonDepth(src, tgt)
	}
	for k, dep := range deps {
		dep.Depth = depth[k]
	}

	return nil
}
