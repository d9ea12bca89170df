// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"rap/internal/version"
)

// PrintUsage writes the tool header, a short synopsis and the flag table.
func PrintUsage(out io.Writer, name string, fs *pflag.FlagSet) {
	fmt.Fprintf(out, "%s: in-silico restriction digest, distinct-enzyme fragment pairs\n\n", name)
	fmt.Fprintln(out, "Based on: rap.c by Graham Gower (graham.gower@gmail.com)")
	fmt.Fprintln(out, "License:  ISC")
	fmt.Fprintf(out, "Version:  %s\n\n", version.Version)

	fmt.Fprintf(out, "Usage:\n  %s -e NAME:SEQ:POS -e NAME:SEQ:POS [flags] ref.fa [more.fa ...]\n\n", name)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintf(out, "  %s -e EcoRI -e MseI -l 200 -u 600 genome.fa.gz\n", name)
	fmt.Fprintf(out, "  %s -e A:AATT:1 -e B:GGCC:2 -o jsonl - < ref.fa\n\n", name)

	fmt.Fprintln(out, "Flags:")
	fmt.Fprint(out, fs.FlagUsages())
}
