package output

import (
	"fmt"
	"io"

	"rap-core/enzyme"
)

// WriteEnzymeTable prints one "name site cut" row per enzyme, tab separated,
// under a header row.
func WriteEnzymeTable(w io.Writer, ens []enzyme.Enzyme) error {
	if _, err := fmt.Fprintln(w, "name\tsite\tcut"); err != nil {
		return err
	}
	for _, e := range ens {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", e.Name, e.Recognition, e.CutForward); err != nil {
			return err
		}
	}
	return nil
}
