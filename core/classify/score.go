// core/classify/score.go
package classify

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ebony/core/alignment"
)

// Result is the terminal scoring outcome for one query sequence.
//
// SitesConsidered is always the model's informative-site count; query
// symbols matching neither allele (gap, ambiguity code, third allele) are
// counted there but in neither match tally. A Result with both match counts
// zero carries the neutral 0.5 score and should be treated as
// low-confidence.
type Result struct {
	SequenceID      string
	SitesConsidered int
	MatchesDark     int
	MatchesLight    int
	Darkness        float64
}

// Score evaluates one aligned query against the model. It is a pure
// function of (m, query); m is never mutated.
//
// Returns *LengthMismatchError when the query does not share the model's
// alignment length.
func Score(m *Model, query alignment.Sequence) (Result, error) {
	if len(query.Seq) != m.Length {
		return Result{}, &LengthMismatchError{SequenceID: query.ID, Got: len(query.Seq), Want: m.Length}
	}
	res := Result{SequenceID: query.ID, SitesConsidered: len(m.Sites)}
	for _, s := range m.Sites {
		switch query.Seq[s.Pos] {
		case s.Dark:
			res.MatchesDark++
		case s.Light:
			res.MatchesLight++
		}
	}
	if denom := res.MatchesDark + res.MatchesLight; denom > 0 {
		res.Darkness = float64(res.MatchesDark) / float64(denom)
	} else {
		res.Darkness = 0.5
	}
	return res, nil
}

// ScoreAll scores every query against the model, up to workers at a time
// (0 = all CPUs). Results keep query order; the first error cancels the
// rest.
func ScoreAll(ctx context.Context, m *Model, queries []alignment.Sequence, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Score(m, q)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
