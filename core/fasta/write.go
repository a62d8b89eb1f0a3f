// core/fasta/write.go
package fasta

import (
	"fmt"
	"io"
)

// DefaultWrap is the sequence line width used by Write when width <= 0.
const DefaultWrap = 80

// Write emits rec as FASTA with sequence lines wrapped at width columns.
func Write(w io.Writer, rec Record, width int) error {
	if width <= 0 {
		width = DefaultWrap
	}
	if _, err := fmt.Fprintf(w, ">%s\n", rec.ID); err != nil {
		return err
	}
	for off := 0; off < len(rec.Seq); off += width {
		end := off + width
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		if _, err := fmt.Fprintf(w, "%s\n", rec.Seq[off:end]); err != nil {
			return err
		}
	}
	return nil
}
