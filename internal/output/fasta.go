package output

import (
	"fmt"
	"io"

	"rap-core/digest"
)

// StreamFASTA writes one record per fragment. Fragments without bases
// (Seq not filled by the pipeline) are skipped.
func StreamFASTA(w io.Writer, in <-chan digest.Fragment) error {
	for f := range in {
		if f.Seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ">%s:%d-%d %s|%s length=%d\n%s\n",
			f.SequenceID, f.Start, f.Cut3(), f.Upstream, f.Downstream, f.Length, f.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}
