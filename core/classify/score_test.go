package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebony/core/alignment"
	"ebony/core/fasta"
	"ebony/core/labels"
)

func tenSiteModel(t *testing.T) *Model {
	t.Helper()
	aln := mustAlign(t,
		fasta.Record{ID: "d1", Seq: []byte("AAAAAAAAAA")},
		fasta.Record{ID: "l1", Seq: []byte("TTTTTTTTTT")},
	)
	table := labels.Table{"d1": labels.Dark, "l1": labels.Light}
	m, _, err := Build(aln, table, BuildOptions{})
	require.NoError(t, err)
	return m
}

func TestScoreHalfAndHalf(t *testing.T) {
	m := tenSiteModel(t)
	res, err := Score(m, alignment.Sequence{ID: "q", Seq: []byte("AAAAATTTTT")})
	require.NoError(t, err)
	assert.Equal(t, 10, res.SitesConsidered)
	assert.Equal(t, 5, res.MatchesDark)
	assert.Equal(t, 5, res.MatchesLight)
	assert.Equal(t, 0.5, res.Darkness)
}

func TestScoreTrainingSequenceLeansToItsClass(t *testing.T) {
	m := tenSiteModel(t)
	res, err := Score(m, alignment.Sequence{ID: "d1", Seq: []byte("AAAAAAAAAA")})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.MatchesDark, res.MatchesLight)
	assert.Equal(t, 1.0, res.Darkness)
}

func TestScoreLengthMismatch(t *testing.T) {
	m := tenSiteModel(t)
	_, err := Score(m, alignment.Sequence{ID: "short", Seq: []byte("AAAAATTTT")})
	require.Error(t, err)
	var merr *LengthMismatchError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, 9, merr.Got)
	assert.Equal(t, 10, merr.Want)
}

func TestScoreThirdAllelesCountTowardSitesOnly(t *testing.T) {
	m := tenSiteModel(t)
	// 3 dark matches, 2 light matches, 5 sites matching neither
	// (gap, N, third allele).
	res, err := Score(m, alignment.Sequence{ID: "q", Seq: []byte("AAATT--NGC")})
	require.NoError(t, err)
	assert.Equal(t, 10, res.SitesConsidered)
	assert.Equal(t, 3, res.MatchesDark)
	assert.Equal(t, 2, res.MatchesLight)
	assert.InDelta(t, 0.6, res.Darkness, 1e-9)
}

func TestScoreZeroDenominatorPolicy(t *testing.T) {
	m := tenSiteModel(t)
	res, err := Score(m, alignment.Sequence{ID: "q", Seq: []byte("----------")})
	require.NoError(t, err)
	assert.Zero(t, res.MatchesDark)
	assert.Zero(t, res.MatchesLight)
	assert.Equal(t, 0.5, res.Darkness)
}

func TestScoreAllMatchesSerialOrderAndValues(t *testing.T) {
	m := tenSiteModel(t)
	queries := []alignment.Sequence{
		{ID: "a", Seq: []byte("AAAAAAAAAA")},
		{ID: "b", Seq: []byte("TTTTTTTTTT")},
		{ID: "c", Seq: []byte("AAAAATTTTT")},
		{ID: "d", Seq: []byte("----------")},
	}

	parallel, err := ScoreAll(context.Background(), m, queries, 4)
	require.NoError(t, err)

	for i, q := range queries {
		serial, err := Score(m, q)
		require.NoError(t, err)
		assert.Equal(t, serial, parallel[i])
	}
}

func TestScoreAllPropagatesFirstError(t *testing.T) {
	m := tenSiteModel(t)
	queries := []alignment.Sequence{
		{ID: "ok", Seq: []byte("AAAAAAAAAA")},
		{ID: "bad", Seq: []byte("AAA")},
	}
	_, err := ScoreAll(context.Background(), m, queries, 2)
	require.Error(t, err)
	var merr *LengthMismatchError
	assert.True(t, errors.As(err, &merr))
}
