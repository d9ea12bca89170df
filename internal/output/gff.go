package output

import (
	"fmt"
	"io"
	"strings"

	"rap-core/digest"
)

const gffHeader = "##gff-version 3"

// StreamGFF writes a minimal GFF3: version header plus one line per fragment.
// Coordinates are converted to 1-based closed, spanning the bases between
// the two cuts.
func StreamGFF(w io.Writer, in <-chan digest.Fragment) error {
	if _, err := fmt.Fprintln(w, gffHeader); err != nil {
		return err
	}
	n := 0
	for f := range in {
		n++
		if _, err := fmt.Fprintf(w,
			"%s\trap\tfragment\t%d\t%d\t.\t+\t.\tID=frag%d;upstream=%s;downstream=%s\n",
			gffSeqID(f.SequenceID), f.Start+1, f.Cut3(), n, gffAttr(f.Upstream), gffAttr(f.Downstream),
		); err != nil {
			return err
		}
	}
	return nil
}

// gffSeqID percent-encodes every byte GFF3 does not allow unescaped in
// the seqid column.
func gffSeqID(s string) string {
	return gffEscape(s, func(c byte) bool {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			strings.IndexByte(".:^*$@!+_?-|", c) >= 0
	})
}

// gffAttr percent-encodes the attribute separators, '%' and control bytes.
func gffAttr(s string) string {
	return gffEscape(s, func(c byte) bool {
		return c >= 0x20 && c != 0x7f && strings.IndexByte(";=&,%", c) < 0
	})
}

func gffEscape(s string, keep func(byte) bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keep(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
