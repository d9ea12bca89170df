// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"rap-core/digest"
	"rap/pkg/api"
)

// ToAPIFragment converts a domain Fragment to the stable wire schema (v1).
func ToAPIFragment(f digest.Fragment) api.FragmentV1 {
	return api.FragmentV1{
		SequenceID: f.SequenceID,
		Start:      f.Start,
		End:        f.End,
		Upstream:   f.Upstream,
		Length:     f.Length,
		Downstream: f.Downstream,
		Seq:        f.Seq,
	}
}

// WriteJSON writes a single JSON array of v1 fragments (pretty-indented).
func WriteJSON(w io.Writer, list []digest.Fragment) error {
	out := make([]api.FragmentV1, 0, len(list))
	for _, f := range list {
		out = append(out, ToAPIFragment(f))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
