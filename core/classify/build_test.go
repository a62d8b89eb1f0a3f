package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebony/core/alignment"
	"ebony/core/fasta"
	"ebony/core/labels"
)

func mustAlign(t *testing.T, recs ...fasta.Record) *alignment.Alignment {
	t.Helper()
	aln, err := alignment.New(recs)
	require.NoError(t, err)
	return aln
}

func TestBuildFullySeparatedColumns(t *testing.T) {
	aln := mustAlign(t,
		fasta.Record{ID: "d1", Seq: []byte("AAAAAAAAAA")},
		fasta.Record{ID: "l1", Seq: []byte("TTTTTTTTTT")},
	)
	table := labels.Table{"d1": labels.Dark, "l1": labels.Light}

	m, sum, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 10, m.Length)
	require.Len(t, m.Sites, 10)
	for i, s := range m.Sites {
		assert.Equal(t, i, s.Pos)
		assert.Equal(t, byte('A'), s.Dark)
		assert.Equal(t, byte('T'), s.Light)
	}
	assert.Equal(t, 1, sum.DarkSeqs)
	assert.Equal(t, 1, sum.LightSeqs)
	assert.Equal(t, 10, sum.Informative)
}

func TestBuildIdenticalGroupsYieldEmptyModel(t *testing.T) {
	aln := mustAlign(t,
		fasta.Record{ID: "d1", Seq: []byte("ACGT")},
		fasta.Record{ID: "l1", Seq: []byte("ACGT")},
	)
	table := labels.Table{"d1": labels.Dark, "l1": labels.Light}

	m, _, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	assert.Empty(t, m.Sites)
	assert.Equal(t, 4, m.Length)

	// Scoring against an empty model hits the zero-denominator policy.
	res, err := Score(m, alignment.Sequence{ID: "q", Seq: []byte("ACGT")})
	require.NoError(t, err)
	assert.Zero(t, res.MatchesDark)
	assert.Zero(t, res.MatchesLight)
	assert.Equal(t, 0.5, res.Darkness)
}

func TestBuildSkipsColumnsWithNonAlleleDominant(t *testing.T) {
	// Column 0: dark dominant '-', column 1: light dominant 'N'.
	// Column 2 is a clean A/T split.
	aln := mustAlign(t,
		fasta.Record{ID: "d1", Seq: []byte("-CA")},
		fasta.Record{ID: "d2", Seq: []byte("-CA")},
		fasta.Record{ID: "l1", Seq: []byte("GNT")},
		fasta.Record{ID: "l2", Seq: []byte("GNT")},
	)
	table := labels.Table{"d1": labels.Dark, "d2": labels.Dark, "l1": labels.Light, "l2": labels.Light}

	m, _, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	require.Len(t, m.Sites, 1)
	assert.Equal(t, Site{Pos: 2, Dark: 'A', Light: 'T'}, m.Sites[0])
}

func TestBuildAllelesAlwaysDifferAndAreBases(t *testing.T) {
	aln := mustAlign(t,
		fasta.Record{ID: "d1", Seq: []byte("ACGT-NACGT")},
		fasta.Record{ID: "d2", Seq: []byte("ACGTAAACGT")},
		fasta.Record{ID: "l1", Seq: []byte("TCGA-NTGCA")},
		fasta.Record{ID: "l2", Seq: []byte("TCGAGGTGCA")},
	)
	table := labels.Table{"d1": labels.Dark, "d2": labels.Dark, "l1": labels.Light, "l2": labels.Light}

	m, _, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	for _, s := range m.Sites {
		assert.NotEqual(t, s.Dark, s.Light, "pos %d", s.Pos)
		assert.Contains(t, []byte{'A', 'C', 'G', 'T'}, s.Dark)
		assert.Contains(t, []byte{'A', 'C', 'G', 'T'}, s.Light)
	}
}

func TestBuildDeterministicTieBreak(t *testing.T) {
	// Dark column ties A vs G; alphabetical rule must pick A every run.
	aln := mustAlign(t,
		fasta.Record{ID: "d1", Seq: []byte("G")},
		fasta.Record{ID: "d2", Seq: []byte("A")},
		fasta.Record{ID: "l1", Seq: []byte("T")},
	)
	table := labels.Table{"d1": labels.Dark, "d2": labels.Dark, "l1": labels.Light}

	first, _, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	require.Len(t, first.Sites, 1)
	assert.Equal(t, byte('A'), first.Sites[0].Dark)

	second, _, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildInsufficientData(t *testing.T) {
	aln := mustAlign(t,
		fasta.Record{ID: "d1", Seq: []byte("ACGT")},
		fasta.Record{ID: "x1", Seq: []byte("ACGT")},
	)
	table := labels.Table{"d1": labels.Dark}

	_, sum, err := Build(aln, table, BuildOptions{})
	require.Error(t, err)
	var ierr *InsufficientDataError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, 1, ierr.Dark)
	assert.Equal(t, 0, ierr.Light)
	assert.Equal(t, []string{"x1"}, sum.Unlabeled)
}

func TestBuildIgnoresUnlabeledSequences(t *testing.T) {
	// The unlabeled all-G sequence must not perturb either group's tally.
	aln := mustAlign(t,
		fasta.Record{ID: "d1.1", Seq: []byte("AAAA")},
		fasta.Record{ID: "l1.2", Seq: []byte("TTTT")},
		fasta.Record{ID: "ref", Seq: []byte("GGGG")},
	)
	table := labels.Table{"d1": labels.Dark, "l1": labels.Light}

	m, sum, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ref"}, sum.Unlabeled)
	require.Len(t, m.Sites, 4)
	assert.Equal(t, byte('A'), m.Sites[0].Dark)
	assert.Equal(t, byte('T'), m.Sites[0].Light)
}

func TestBuildMinFreqFiltersWeakColumns(t *testing.T) {
	// Dark column 0 splits A/A/C (dominant freq 2/3); a 0.75 threshold
	// drops it while the clean column 1 survives.
	aln := mustAlign(t,
		fasta.Record{ID: "d1", Seq: []byte("AA")},
		fasta.Record{ID: "d2", Seq: []byte("AA")},
		fasta.Record{ID: "d3", Seq: []byte("CA")},
		fasta.Record{ID: "l1", Seq: []byte("TT")},
	)
	table := labels.Table{"d1": labels.Dark, "d2": labels.Dark, "d3": labels.Dark, "l1": labels.Light}

	loose, _, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	assert.Len(t, loose.Sites, 2)

	strict, _, err := Build(aln, table, BuildOptions{MinFreq: 0.75})
	require.NoError(t, err)
	require.Len(t, strict.Sites, 1)
	assert.Equal(t, 1, strict.Sites[0].Pos)
}
