// core/region/region.go

// Package region extracts a coordinate window from a genome FASTA record.
package region

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"ebony/core/fasta"
)

// Query is a 1-based inclusive genome window on a chromosome identified by
// a name hint.
type Query struct {
	Hint  string
	Start int
	End   int
}

// ParseQuery parses the CHROM:START-END form, e.g. "3R:8390000-8423000".
func ParseQuery(s string) (Query, error) {
	colon := strings.LastIndex(s, ":")
	if colon <= 0 || colon == len(s)-1 {
		return Query{}, errors.Errorf("invalid region %q, want CHROM:START-END", s)
	}
	span := s[colon+1:]
	dash := strings.IndexByte(span, '-')
	if dash <= 0 || dash == len(span)-1 {
		return Query{}, errors.Errorf("invalid region span %q, want START-END", span)
	}
	start, err := strconv.Atoi(span[:dash])
	if err != nil {
		return Query{}, errors.Wrapf(err, "invalid region start %q", span[:dash])
	}
	end, err := strconv.Atoi(span[dash+1:])
	if err != nil {
		return Query{}, errors.Wrapf(err, "invalid region end %q", span[dash+1:])
	}
	q := Query{Hint: s[:colon], Start: start, End: end}
	if q.Start < 1 || q.End < q.Start {
		return Query{}, errors.Errorf("invalid region coordinates %d-%d (1-based inclusive)", q.Start, q.End)
	}
	return q, nil
}

// MatchHint reports whether a FASTA record name satisfies a chromosome
// hint: exact match, either being a suffix of the other, or the hint
// appearing as a substring ("3R" matches "chr3R", "3R_scaffold", ...).
func MatchHint(name, hint string) bool {
	return name == hint ||
		strings.HasSuffix(name, hint) ||
		strings.HasSuffix(hint, name) ||
		strings.Contains(name, hint)
}

// Slice cuts q's window out of seq. Start must lie inside the sequence;
// End is clipped to the sequence length. The returned record is named
// name:start-endClipped.
func Slice(name string, seq []byte, q Query) (fasta.Record, error) {
	if q.Start < 1 || q.Start > len(seq) {
		return fasta.Record{}, errors.Errorf("start %d outside %s (length %d)", q.Start, name, len(seq))
	}
	end := q.End
	if end > len(seq) {
		end = len(seq)
	}
	sub := append([]byte(nil), seq[q.Start-1:end]...)
	return fasta.Record{
		ID:  fmt.Sprintf("%s:%d-%d", name, q.Start, end),
		Seq: sub,
	}, nil
}

// Extract streams path until it finds the first record matching q.Hint and
// slices the window from it.
func Extract(ctx context.Context, path string, q Query) (fasta.Record, error) {
	var (
		found bool
		out   fasta.Record
	)
	errStop := errors.New("stop")
	err := fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
		if !MatchHint(r.ID, q.Hint) {
			return nil
		}
		rec, err := Slice(r.ID, r.Seq, q)
		if err != nil {
			return err
		}
		out, found = rec, true
		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return fasta.Record{}, err
	}
	if !found {
		return fasta.Record{}, errors.Errorf("no FASTA header matching hint %q in %s", q.Hint, path)
	}
	return out, nil
}
