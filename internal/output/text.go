// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"rap-core/digest"
)

// WriteRowTSV writes one fragment line:
// sequence_id, start, end, upstream, length, downstream.
func WriteRowTSV(w io.Writer, f digest.Fragment) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%s\n",
		f.SequenceID, f.Start, f.End, f.Upstream, f.Length, f.Downstream)
	return err
}

// StreamText writes fragments as they arrive.
func StreamText(w io.Writer, in <-chan digest.Fragment, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for f := range in {
		if err := WriteRowTSV(w, f); err != nil {
			return err
		}
	}
	return nil
}
