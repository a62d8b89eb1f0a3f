package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebony/core/classify"
	"ebony/pkg/api"
)

var sample = []classify.Result{
	{SequenceID: "EF114371", SitesConsidered: 10, MatchesDark: 5, MatchesLight: 5, Darkness: 0.5},
	{SequenceID: "q2", SitesConsidered: 10, MatchesDark: 2, MatchesLight: 4, Darkness: 1.0 / 3.0},
}

func TestWriteScoreText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScoreText(&buf, sample, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ScoreTSVHeader, lines[0])
	assert.Equal(t, "EF114371\t10\t5\t5\t0.500", lines[1])
	assert.Equal(t, "q2\t10\t2\t4\t0.333", lines[2])
}

func TestWriteScoreTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScoreText(&buf, sample[:1], false))
	assert.False(t, strings.Contains(buf.String(), "sequence_id"))
}

func TestWriteScoreJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScoreJSON(&buf, sample))

	var got []api.ScoreV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "EF114371", got[0].SequenceID)
	assert.Equal(t, 0.5, got[0].DarknessScore)
	// rounded at the wire boundary
	assert.Equal(t, 0.333, got[1].DarknessScore)
}
