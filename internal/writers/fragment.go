// internal/writers/fragment.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"rap-core/digest"
	"rap/internal/jsonlutil"
	"rap/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, in <-chan digest.Fragment, opt Options) error {
		return output.StreamText(w, in, opt.Header)
	})
	Register(output.FormatJSON, func(w io.Writer, in <-chan digest.Fragment, _ Options) error {
		var buf []digest.Fragment
		for f := range in {
			buf = append(buf, f)
		}
		return output.WriteJSON(w, buf)
	})
	Register(output.FormatJSONL, func(w io.Writer, in <-chan digest.Fragment, _ Options) error {
		return jsonlutil.Drain(w, in, func(enc *json.Encoder, f digest.Fragment) error {
			return enc.Encode(output.ToAPIFragment(f))
		})
	})
	Register(output.FormatGFF, func(w io.Writer, in <-chan digest.Fragment, _ Options) error {
		return output.StreamGFF(w, in)
	})
	Register(output.FormatFASTA, func(w io.Writer, in <-chan digest.Fragment, _ Options) error {
		return output.StreamFASTA(w, in)
	})
}

// NeedSeq reports whether format renders fragment bases.
func NeedSeq(format string) bool { return format == output.FormatFASTA }

// WriteFragments renders every fragment received on in to out, buffered,
// until in is closed. It returns at the first write error and does not
// drain in after that; the sender must stop on its own (appcore cancels the
// scan when this returns an error). Broken pipes are returned as is, see
// IsBrokenPipe.
func WriteFragments(out io.Writer, format string, opt Options, in <-chan digest.Fragment) error {
	fn, err := Lookup(format)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	if err := fn(bw, in, opt); err != nil {
		return err
	}
	return bw.Flush()
}
