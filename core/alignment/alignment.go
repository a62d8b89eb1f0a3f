// core/alignment/alignment.go
package alignment

import (
	"fmt"

	"github.com/pkg/errors"

	"ebony/core/fasta"
)

// Sequence is one aligned sequence in the shared column coordinate system.
type Sequence struct {
	ID  string
	Seq []byte
}

// LengthError reports a sequence whose length breaks the shared alignment
// length. Always fatal to the operation that observed it.
type LengthError struct {
	ID   string
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("sequence %s has length %d, alignment length is %d (align inputs first, e.g. with MAFFT)", e.ID, e.Got, e.Want)
}

// NewSequence validates symbols against the alignment alphabet: uppercase
// letters (nucleotides plus IUPAC ambiguity codes) and the gap characters
// '-' and '.'.
func NewSequence(id string, seq []byte) (Sequence, error) {
	for i, b := range seq {
		if !validSymbol(b) {
			return Sequence{}, errors.Errorf("sequence %s: invalid symbol %q at column %d", id, b, i)
		}
	}
	return Sequence{ID: id, Seq: seq}, nil
}

func validSymbol(b byte) bool {
	return (b >= 'A' && b <= 'Z') || b == '-' || b == '.'
}

// Alignment is an ordered, validated set of equal-length sequences.
type Alignment struct {
	seqs   []Sequence
	length int
}

// New validates records into an Alignment. Every sequence must match the
// length of the first; a violation is a *LengthError, never a silent
// truncation.
func New(records []fasta.Record) (*Alignment, error) {
	if len(records) == 0 {
		return nil, errors.New("empty alignment: no sequences")
	}
	length := len(records[0].Seq)
	seqs := make([]Sequence, 0, len(records))
	for _, rec := range records {
		if len(rec.Seq) != length {
			return nil, &LengthError{ID: rec.ID, Got: len(rec.Seq), Want: length}
		}
		s, err := NewSequence(rec.ID, rec.Seq)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return &Alignment{seqs: seqs, length: length}, nil
}

// Length is the shared column count L.
func (a *Alignment) Length() int { return a.length }

// Len is the number of sequences.
func (a *Alignment) Len() int { return len(a.seqs) }

// Sequences returns the aligned sequences in input order. The slice is
// shared; callers must not mutate it.
func (a *Alignment) Sequences() []Sequence { return a.seqs }
