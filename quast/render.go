// SPDX-License-Identifier: MIT

package quast

import (
	"fmt"
	"math/big"
	"strings"
)

// String renders the tree in a canonical one-line form, e.g.
//
//	if(p0 >= 0; [0]; nil)
//	newparam(p1 = floor((p0 + 1)/2); [p1])
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)

	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("nil")
		return
	}
	switch n.Kind {
	case Nil:
		sb.WriteString("nil")
	case Error:
		fmt.Fprintf(sb, "error(%s)", n.Code)
	case NewParam:
		fmt.Fprintf(sb, "newparam(p%d = floor(%s); ", n.Rank, n.Div)
		n.Rest.write(sb)
		sb.WriteByte(')')
	case If:
		fmt.Fprintf(sb, "if(%s >= 0; ", Affine(n.Cond))
		n.Then.write(sb)
		sb.WriteString("; ")
		n.Else.write(sb)
		sb.WriteByte(')')
	case List:
		sb.WriteByte('[')
		for i, f := range n.Forms {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.String())
		}
		if len(n.Duals) > 0 {
			sb.WriteString("; dual ")
			for i, v := range n.Duals {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(new(big.Rat).SetFrac(v.Num, v.Den).RatString())
			}
		}
		sb.WriteByte(']')
	}
}

// String renders a form as "expr" or "(expr)/den".
func (f Form) String() string {
	if f.Unbounded {
		return "unbounded"
	}
	s := Affine(f.Coef)
	if f.Den == nil || f.Den.Cmp(big.NewInt(1)) == 0 {
		return s
	}
	if strings.Contains(s, " ") {
		s = "(" + s + ")"
	}

	return fmt.Sprintf("%s/%s", s, f.Den)
}

// Affine renders coef·(p,1) with parameters named p0, p1, ...
func Affine(coef []*big.Int) string {
	var sb strings.Builder
	np := len(coef) - 1
	term := func(c *big.Int, name string) {
		if c.Sign() == 0 {
			return
		}
		abs := new(big.Int).Abs(c)
		switch {
		case sb.Len() == 0 && c.Sign() < 0:
			sb.WriteByte('-')
		case sb.Len() > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if name == "" || abs.Cmp(big.NewInt(1)) != 0 {
			sb.WriteString(abs.String())
		}
		sb.WriteString(name)
	}
	for k := 0; k < np; k++ {
		term(coef[k], fmt.Sprintf("p%d", k))
	}
	if np >= 0 {
		term(coef[np], "")
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
