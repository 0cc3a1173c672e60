// SPDX-License-Identifier: MIT

package quast

import (
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
)

// NodeKind tags a QUAST node.
type NodeKind uint8

const (
	Nil NodeKind = iota
	Error
	NewParam
	If
	List
)

// Form is the affine value Coef·(p,1) / Den of one leaf coordinate.
// Unbounded is set when a stripped big-parameter column was non-zero.
type Form struct {
	Coef      []*big.Int
	Den       *big.Int
	Unbounded bool
}

// Value is a rational dual value.
type Value struct {
	Num, Den *big.Int
}

// Node is an immutable QUAST node.
type Node struct {
	Kind NodeKind

	Code Code // Error

	Rank int   // NewParam: index of the introduced parameter
	Div  *Form // NewParam: p_Rank = floor(Div)
	Rest *Node // NewParam

	Cond       []*big.Int // If: Cond·(p,1) >= 0 selects Then
	Then, Else *Node

	Forms []Form  // List
	Duals []Value // List, when dual values were requested
}

// IsNil reports whether n is a Nil leaf.
func (n *Node) IsNil() bool { return n == nil || n.Kind == Nil }

// HasSolution reports whether any List leaf is reachable from n.
func (n *Node) HasSolution() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case List:
		return true
	case NewParam:
		return n.Rest.HasSolution()
	case If:
		return n.Then.HasSolution() || n.Else.HasSolution()
	default:
		return false
	}
}

// Equal reports structural equality.
func (n *Node) Equal(o *Node) bool { return n.equal(o, -1) }

// EqualPrefix reports structural equality with leaves compared on their first
// k forms only (dual values ignored).
func (n *Node) EqualPrefix(o *Node, k int) bool { return n.equal(o, k) }

func (n *Node) equal(o *Node, k int) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case Error:
		return n.Code == o.Code
	case NewParam:
		return n.Rank == o.Rank && n.Div.Equal(*o.Div) && n.Rest.equal(o.Rest, k)
	case If:
		return exact.EqualVec(n.Cond, o.Cond) && n.Then.equal(o.Then, k) && n.Else.equal(o.Else, k)
	case List:
		a, b := n.Forms, o.Forms
		if k >= 0 {
			if len(a) < k || len(b) < k {
				return false
			}
			a, b = a[:k], b[:k]
		} else if len(n.Duals) != len(o.Duals) {
			return false
		} else {
			for i := range n.Duals {
				if n.Duals[i].Num.Cmp(o.Duals[i].Num) != 0 || n.Duals[i].Den.Cmp(o.Duals[i].Den) != 0 {
					return false
				}
			}
		}
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
	}

	return true
}

// Equal reports equality of two forms.
func (f Form) Equal(g Form) bool {
	return f.Unbounded == g.Unbounded && f.Den.Cmp(g.Den) == 0 && exact.EqualVec(f.Coef, g.Coef)
}

// IsConstant reports whether f does not depend on any parameter.
func (f Form) IsConstant() bool {
	return !f.Unbounded && exact.AllZero(f.Coef[:len(f.Coef)-1])
}

// Eval returns the value of f at params (missing trailing parameters are 0).
func (f Form) Eval(params []*big.Int) *big.Rat {
	num := affine(f.Coef, params)

	return new(big.Rat).SetFrac(num, f.Den)
}

// affine evaluates coef·(p,1).
func affine(coef []*big.Int, params []*big.Int) *big.Int {
	np := len(coef) - 1
	acc := new(big.Int).Set(coef[np])
	var tmp big.Int
	for k := 0; k < np && k < len(params); k++ {
		acc.Add(acc, tmp.Mul(coef[k], params[k]))
	}

	return acc
}

// Project returns a copy of the tree whose leaves keep only forms[from:from+k].
func (n *Node) Project(from, k int) *Node {
	if n == nil {
		return nil
	}
	out := *n
	switch n.Kind {
	case NewParam:
		out.Rest = n.Rest.Project(from, k)
	case If:
		out.Then = n.Then.Project(from, k)
		out.Else = n.Else.Project(from, k)
	case List:
		end := from + k
		if end > len(n.Forms) {
			end = len(n.Forms)
		}
		if from > end {
			from = end
		}
		out.Forms = append([]Form(nil), n.Forms[from:end]...)
		out.Duals = nil
	}

	return &out
}

// Step is one decision on the path from the root to a leaf: either an If
// outcome (Cond, Holds) or a parameter definition (Div != nil).
type Step struct {
	Cond  []*big.Int
	Holds bool
	Rank  int
	Div   *Form
}

// Leaf is a List, Nil or Error node with the decisions leading to it.
type Leaf struct {
	Path []Step
	Node *Node
}

// Leaves lists every leaf of the tree in prefix order.
func (n *Node) Leaves() []Leaf {
	var out []Leaf
	var walk func(*Node, []Step)
	walk = func(x *Node, path []Step) {
		if x == nil {
			return
		}
		switch x.Kind {
		case NewParam:
			walk(x.Rest, append(path[:len(path):len(path)], Step{Rank: x.Rank, Div: x.Div}))
		case If:
			walk(x.Then, append(path[:len(path):len(path)], Step{Cond: x.Cond, Holds: true}))
			walk(x.Else, append(path[:len(path):len(path)], Step{Cond: x.Cond, Holds: false}))
		default:
			out = append(out, Leaf{Path: path, Node: x})
		}
	}
	walk(n, nil)

	return out
}

// Eval follows the tree for the given parameter values and returns the leaf
// reached together with the parameter vector extended by every NewParam
// definition met on the way.
func (n *Node) Eval(params []*big.Int) (*Node, []*big.Int) {
	p := exact.CopyVec(params)
	x := n
	for x != nil {
		switch x.Kind {
		case NewParam:
			v, _ := exact.FloorDiv(affine(x.Div.Coef, p), x.Div.Den)
			for len(p) <= x.Rank {
				p = append(p, new(big.Int))
			}
			p[x.Rank] = v
			x = x.Rest
		case If:
			if affine(x.Cond, p).Sign() >= 0 {
				x = x.Then
			} else {
				x = x.Else
			}
		default:
			return x, p
		}
	}

	return nil, p
}
