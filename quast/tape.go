// SPDX-License-Identifier: MIT

package quast

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
)

// Kind tags a tape record.
type Kind uint8

const (
	KindNil Kind = iota
	KindError
	KindNew
	KindDiv
	KindIf
	KindList
	KindForm
	KindValue
)

var kindNames = [...]string{"nil", "error", "new", "div", "if", "list", "form", "value"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Record is one tape entry. Only the fields relevant to Kind are set.
type Record struct {
	Kind  Kind
	Rank  int        // New: index of the introduced parameter
	Code  Code       // Error
	Count int        // List: number of Form records that follow
	Duals int        // List: number of Value records after the forms
	Vec   []*big.Int // Div, If, Form: coefficients over parameters + constant
	Num   *big.Int   // Value numerator
	Den   *big.Int   // Div, Form, Value denominator
}

// Tape is the append-only solution recorder of one top-level solve.
// It is not safe for concurrent use; a solve owns its tape.
type Tape struct {
	recs  []Record
	limit int
}

// NewTape returns an empty tape holding at most limit records (limit <= 0
// means unlimited).
func NewTape(limit int) *Tape {
	return &Tape{recs: make([]Record, 0, 64), limit: limit}
}

// Len returns the number of records.
func (t *Tape) Len() int { return len(t.recs) }

// At returns record i. The vectors are shared with the tape and must not be
// modified.
func (t *Tape) At(i int) Record { return t.recs[i] }

// Mark returns a checkpoint for Reset.
func (t *Tape) Mark() int { return len(t.recs) }

// Reset truncates the tape back to mark, dropping every record appended
// since Mark returned it.
func (t *Tape) Reset(mark int) error {
	if mark < 0 || mark > len(t.recs) {
		return fmt.Errorf("Reset(%d) on %d records: %w", mark, len(t.recs), ErrBadMark)
	}
	for i := mark; i < len(t.recs); i++ {
		t.recs[i] = Record{}
	}
	t.recs = t.recs[:mark]

	return nil
}

func (t *Tape) push(r Record) error {
	if t.limit > 0 && len(t.recs) >= t.limit {
		return fmt.Errorf("record %d (%s): %w", len(t.recs), r.Kind, ErrTapeCapacity)
	}
	t.recs = append(t.recs, r)

	return nil
}

// Nil records an empty leaf.
func (t *Tape) Nil() error { return t.push(Record{Kind: KindNil}) }

// Error records an Error leaf.
func (t *Tape) Error(code Code) error { return t.push(Record{Kind: KindError, Code: code}) }

// If records a branch on cond >= 0; the then and else subtrees follow.
func (t *Tape) If(cond []*big.Int) error {
	return t.push(Record{Kind: KindIf, Vec: exact.CopyVec(cond)})
}

// NewParam records p_rank = floor(num·(p,1) / den); the rest subtree follows.
func (t *Tape) NewParam(rank int, num []*big.Int, den *big.Int) error {
	if err := t.push(Record{Kind: KindNew, Rank: rank}); err != nil {
		return err
	}

	return t.push(Record{Kind: KindDiv, Vec: exact.CopyVec(num), Den: exact.Copy(den)})
}

// List opens a leaf of count forms followed by duals dual values.
func (t *Tape) List(count, duals int) error {
	return t.push(Record{Kind: KindList, Count: count, Duals: duals})
}

// Form records one leaf coordinate num·(p,1) / den.
func (t *Tape) Form(num []*big.Int, den *big.Int) error {
	return t.push(Record{Kind: KindForm, Vec: exact.CopyVec(num), Den: exact.Copy(den)})
}

// Value records one dual value num/den.
func (t *Tape) Value(num, den *big.Int) error {
	return t.push(Record{Kind: KindValue, Num: exact.Copy(num), Den: exact.Copy(den)})
}

// SubtreeKind reports the kind of the tree starting at record from, skipping
// NewParam prefixes. It lets a compatibility test read Nil / non-Nil without
// building the tree.
func (t *Tape) SubtreeKind(from int) (Kind, error) {
	for i := from; i < len(t.recs); i++ {
		switch t.recs[i].Kind {
		case KindNew, KindDiv:
			continue
		default:
			return t.recs[i].Kind, nil
		}
	}

	return KindNil, fmt.Errorf("SubtreeKind(%d): %w", from, ErrMalformedTape)
}
