// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"math"

	"ebony/core/classify"
	"ebony/pkg/api"
)

// ToAPIScore converts a domain Result to the stable wire schema (v1),
// rounding darkness to the reported 3-decimal precision.
func ToAPIScore(r classify.Result) api.ScoreV1 {
	return api.ScoreV1{
		SequenceID:      r.SequenceID,
		SitesConsidered: r.SitesConsidered,
		MatchesDark:     r.MatchesDark,
		MatchesLight:    r.MatchesLight,
		DarknessScore:   math.Round(r.Darkness*1000) / 1000,
	}
}

func toAPIScores(list []classify.Result) []api.ScoreV1 {
	out := make([]api.ScoreV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIScore(r))
	}
	return out
}

// WriteScoreJSON writes a single JSON array of v1 results (pretty-indented).
func WriteScoreJSON(w io.Writer, list []classify.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIScores(list))
}
