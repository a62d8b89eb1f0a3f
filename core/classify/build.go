// core/classify/build.go
package classify

import (
	"ebony/core/alignment"
	"ebony/core/labels"
)

// BuildOptions tunes model building.
type BuildOptions struct {
	// MinFreq, when > 0, additionally requires the dominant allele to reach
	// this frequency among the called (non-gap, non-N) bases of its group
	// in that column, in both groups. 0 keeps every dominant-allele
	// disagreement.
	MinFreq float64
}

// BuildSummary reports training-run statistics. Informational only; it is
// not part of the model artifact.
type BuildSummary struct {
	DarkSeqs    int
	LightSeqs   int
	Unlabeled   []string // IDs excluded for having no label, in input order
	Informative int
}

// Build derives the classifier model from a labeled alignment.
//
// Per column, the dominant symbol of each group is the most frequent one,
// ties broken alphabetically (lowest byte) so repeated runs on identical
// input yield identical models. Columns where either dominant symbol is a
// gap or ambiguity code are skipped; the rest are informative exactly when
// the two dominants differ.
//
// Returns *InsufficientDataError if either class is empty after filtering.
func Build(aln *alignment.Alignment, table labels.Table, opt BuildOptions) (*Model, BuildSummary, error) {
	var (
		dark, light [][]byte
		sum         BuildSummary
	)
	for _, s := range aln.Sequences() {
		switch c, ok := table.Lookup(s.ID); {
		case !ok:
			sum.Unlabeled = append(sum.Unlabeled, s.ID)
		case c == labels.Dark:
			dark = append(dark, s.Seq)
		default:
			light = append(light, s.Seq)
		}
	}
	sum.DarkSeqs, sum.LightSeqs = len(dark), len(light)
	if len(dark) == 0 || len(light) == 0 {
		return nil, sum, &InsufficientDataError{Dark: len(dark), Light: len(light)}
	}

	m := &Model{Length: aln.Length()}
	for i := 0; i < aln.Length(); i++ {
		d, dOK := dominant(dark, i, opt.MinFreq)
		if !dOK {
			continue
		}
		l, lOK := dominant(light, i, opt.MinFreq)
		if !lOK {
			continue
		}
		if d != l {
			m.Sites = append(m.Sites, Site{Pos: i, Dark: d, Light: l})
		}
	}
	sum.Informative = len(m.Sites)
	return m, sum, nil
}

// dominant returns the most frequent symbol in column i of the group and
// whether it qualifies as an allele: it must be one of A/C/G/T and, when
// minFreq > 0, reach that fraction of the group's called bases.
func dominant(group [][]byte, i int, minFreq float64) (byte, bool) {
	var counts [256]int
	for _, seq := range group {
		counts[seq[i]]++
	}
	// Ascending scan with strict '>' keeps the lowest symbol on ties.
	best, bestN := byte(0), 0
	for b := 0; b < 256; b++ {
		if counts[b] > bestN {
			best, bestN = byte(b), counts[b]
		}
	}
	if !isAllele(best) {
		return 0, false
	}
	if minFreq > 0 {
		called := counts['A'] + counts['C'] + counts['G'] + counts['T']
		if called == 0 || float64(bestN)/float64(called) < minFreq {
			return 0, false
		}
	}
	return best, true
}

func isAllele(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T'
}
