// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"ebony/core/classify"
)

// WriteScoreText prints one TSV line per result, darkness with 3 decimals
// (0=light, 1=dark).
func WriteScoreText(w io.Writer, list []classify.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ScoreTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.3f\n",
			r.SequenceID, r.SitesConsidered, r.MatchesDark, r.MatchesLight, r.Darkness)
		if err != nil {
			return err
		}
	}
	return nil
}
