// SPDX-License-Identifier: MIT

package dependence

// Permutable reports whether the loops whose DDV lists are ddv1 and ddv2 can
// be interchanged, looking at component dim1 of the first list and dim2 of
// the second. A loop carrying no dependence is always permutable. Components
// out of range are ignored; Unknown counts as Star.
func Permutable(ddv1, ddv2 []DDV, dim1, dim2 int) bool {
	if len(ddv1) == 0 || len(ddv2) == 0 {
		return true
	}

	var f signs
	switch {
	case len(ddv1) > len(ddv2):
		f.scan(ddv1, dim1, dim2)
	case len(ddv2) > len(ddv1):
		f.scan(ddv2, dim1, dim2)
	default:
		f.scan(ddv1, dim1, dim2)
		f.scan(ddv2, dim1, dim2)
	}
	if f.star1 || f.star2 {
		return false
	}
	if (f.pos1 && f.neg1) || (f.pos2 && f.neg2) {
		return false
	}

	return !((f.pos1 && f.neg2) || (f.neg1 && f.pos2))
}

// signs accumulates the direction classes seen on both dimensions.
type signs struct {
	pos1, neg1, star1 bool
	pos2, neg2, star2 bool
}

func (f *signs) scan(list []DDV, dim1, dim2 int) {
	for _, v := range list {
		if dim1 >= 0 && dim1 < len(v.Components) {
			classify(v.Components[dim1], &f.pos1, &f.neg1, &f.star1)
		}
		if dim2 >= 0 && dim2 < len(v.Components) {
			classify(v.Components[dim2], &f.pos2, &f.neg2, &f.star2)
		}
	}
}

func classify(c Component, pos, neg, star *bool) {
	switch {
	case c.positive():
		*pos = true
	case c.negative():
		*neg = true
	case c.Type == Star, c.Type == Unknown:
		*star = true
	}
}
