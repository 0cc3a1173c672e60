// SPDX-License-Identifier: MIT

package quast

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
)

// ReadOptions control how Build interprets the tape.
type ReadOptions struct {
	// Strip is a parameter column removed from every vector, or -1.
	// A leaf form with a non-zero coefficient there is marked Unbounded.
	Strip int

	// BigCol receives Shift times the form denominator after negation, or -1.
	BigCol int
	Shift  int64

	// Negate flips the sign of every leaf form and dual value.
	Negate bool

	// Simplify collapses If(Nil, Nil) into Nil.
	Simplify bool
}

// DefaultReadOptions reads the tape as recorded.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Strip: -1, BigCol: -1}
}

// Build converts the tree starting at record from into a QUAST. It returns
// the root and the index of the first record after the tree. The tape is not
// modified, so Build may run any number of times.
// Complexity: O(records · width).
func Build(t *Tape, from int, opt ReadOptions) (*Node, int, error) {
	b := builder{t: t, opt: opt}

	return b.read(from)
}

type builder struct {
	t   *Tape
	opt ReadOptions
}

func (b *builder) record(i int) (Record, error) {
	if i < 0 || i >= len(b.t.recs) {
		return Record{}, fmt.Errorf("Build: record %d of %d: %w", i, len(b.t.recs), ErrMalformedTape)
	}

	return b.t.recs[i], nil
}

func (b *builder) read(i int) (*Node, int, error) {
	rec, err := b.record(i)
	if err != nil {
		return nil, i, err
	}
	switch rec.Kind {
	case KindNil:
		return &Node{Kind: Nil}, i + 1, nil

	case KindError:
		return &Node{Kind: Error, Code: rec.Code}, i + 1, nil

	case KindNew:
		div, err := b.record(i + 1)
		if err != nil {
			return nil, i, err
		}
		if div.Kind != KindDiv {
			return nil, i, fmt.Errorf("Build: record %d is %s, want div: %w", i+1, div.Kind, ErrMalformedTape)
		}
		rest, next, err := b.read(i + 2)
		if err != nil {
			return nil, next, err
		}
		f := Form{Coef: b.strip(exact.CopyVec(div.Vec)), Den: exact.Copy(div.Den)}

		return &Node{Kind: NewParam, Rank: b.rank(rec.Rank), Div: &f, Rest: rest}, next, nil

	case KindIf:
		then, next, err := b.read(i + 1)
		if err != nil {
			return nil, next, err
		}
		els, next, err := b.read(next)
		if err != nil {
			return nil, next, err
		}
		if b.opt.Simplify && then.Kind == Nil && els.Kind == Nil {
			return &Node{Kind: Nil}, next, nil
		}

		return &Node{Kind: If, Cond: b.strip(exact.CopyVec(rec.Vec)), Then: then, Else: els}, next, nil

	case KindList:
		return b.list(i, rec)

	default:
		return nil, i, fmt.Errorf("Build: record %d is a stray %s: %w", i, rec.Kind, ErrMalformedTape)
	}
}

func (b *builder) list(i int, head Record) (*Node, int, error) {
	n := &Node{Kind: List, Forms: make([]Form, 0, head.Count)}
	next := i + 1
	for k := 0; k < head.Count; k, next = k+1, next+1 {
		rec, err := b.record(next)
		if err != nil {
			return nil, next, err
		}
		if rec.Kind != KindForm {
			return nil, next, fmt.Errorf("Build: record %d is %s, want form: %w", next, rec.Kind, ErrMalformedTape)
		}
		n.Forms = append(n.Forms, b.form(rec))
	}
	for k := 0; k < head.Duals; k, next = k+1, next+1 {
		rec, err := b.record(next)
		if err != nil {
			return nil, next, err
		}
		if rec.Kind != KindValue {
			return nil, next, fmt.Errorf("Build: record %d is %s, want value: %w", next, rec.Kind, ErrMalformedTape)
		}
		v := Value{Num: exact.Copy(rec.Num), Den: exact.Copy(rec.Den)}
		if b.opt.Negate {
			v.Num.Neg(v.Num)
		}
		n.Duals = append(n.Duals, v)
	}

	return n, next, nil
}

// form applies Negate, Shift and Strip, in that order, to a leaf coordinate.
func (b *builder) form(rec Record) Form {
	coef := exact.CopyVec(rec.Vec)
	den := exact.Copy(rec.Den)
	if b.opt.Negate {
		for _, c := range coef {
			c.Neg(c)
		}
	}
	if b.opt.Shift != 0 && b.opt.BigCol >= 0 && b.opt.BigCol < len(coef)-1 {
		d := new(big.Int).Mul(big.NewInt(b.opt.Shift), den)
		coef[b.opt.BigCol].Add(coef[b.opt.BigCol], d)
	}
	f := Form{Den: den}
	if b.opt.Strip >= 0 && b.opt.Strip < len(coef)-1 && coef[b.opt.Strip].Sign() != 0 {
		f.Unbounded = true
	}
	f.Coef = b.strip(coef)
	f.Den = exact.ReduceVec(f.Coef, f.Den)

	return f
}

// strip removes the Strip column from a parameters+constant vector.
func (b *builder) strip(v []*big.Int) []*big.Int {
	s := b.opt.Strip
	if s < 0 || s >= len(v)-1 {
		return v
	}

	return append(v[:s], v[s+1:]...)
}

// rank renumbers a parameter index after stripping.
func (b *builder) rank(r int) int {
	if b.opt.Strip >= 0 && r > b.opt.Strip {
		return r - 1
	}

	return r
}
