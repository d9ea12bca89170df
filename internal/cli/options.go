// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"rap-core/digest"
	"rap/internal/output"
)

// MaxSize bounds --lower and --upper.
const MaxSize = 10000

// Options holds all CLI flags and arguments.
type Options struct {
	// Enzymes, in command-line order; --enzyme-file entries follow.
	Enzymes    []string
	EnzymeFile string
	SeqFiles   []string

	// Size window
	Lower int
	Upper int

	// Output
	Output          string
	Header          bool
	DBPath          string
	NoMatchExitCode int

	// Misc
	ListEnzymes bool
	Quiet       bool
	Verbose     bool
	Version     bool
}

// Window returns the size window as the scanner wants it.
func (o Options) Window() digest.Window {
	return digest.Window{Lower: o.Lower, Upper: o.Upper}
}

// ConfigError reports an invalid flag or argument.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

func configf(format string, args ...any) error {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}

// Register wires every flag onto fs.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.StringArrayVarP(&o.Enzymes, "enzyme", "e", nil, "restriction enzyme NAME:SEQ:POS or built-in NAME (repeatable)")
	fs.StringVar(&o.EnzymeFile, "enzyme-file", "", "YAML enzyme catalog, appended after --enzyme entries")

	def := digest.DefaultWindow()
	fs.IntVarP(&o.Lower, "lower", "l", def.Lower, "lower fragment size limit, exclusive")
	fs.IntVarP(&o.Upper, "upper", "u", def.Upper, "upper fragment size limit, exclusive")

	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output: "+strings.Join(output.Formats, " | "))
	fs.BoolVar(&o.Header, "header", false, "print a header row in text output")
	fs.StringVar(&o.DBPath, "db", "", "also record fragments in this SQLite database")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no fragments are found")

	fs.BoolVar(&o.ListEnzymes, "list-enzymes", false, "print the built-in enzyme table and exit")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "log errors only")
	fs.BoolVar(&o.Verbose, "verbose", false, "log per-record progress")
	fs.BoolVarP(&o.Version, "version", "v", false, "print version and exit")
}

// Finalize takes the positional FASTA paths, expands globs and validates.
// Every error it returns is a *ConfigError.
func Finalize(o *Options, posArgs []string) error {
	files, err := ExpandPositionals(posArgs)
	if err != nil {
		return &ConfigError{Err: err}
	}
	o.SeqFiles = files
	return Validate(*o)
}

// Validate checks the options a digest run needs.
func Validate(o Options) error {
	if len(o.Enzymes) == 0 && o.EnzymeFile == "" {
		return configf("at least one --enzyme or an --enzyme-file is required")
	}
	if len(o.SeqFiles) == 0 {
		return configf("at least one FASTA input is required ('-' for stdin)")
	}
	if o.Lower < 0 || o.Lower > MaxSize {
		return configf("--lower must be between 0 and %d, got %d", MaxSize, o.Lower)
	}
	if o.Upper < 0 || o.Upper > MaxSize {
		return configf("--upper must be between 0 and %d, got %d", MaxSize, o.Upper)
	}
	if !slices.Contains(output.Formats, o.Output) {
		return configf("invalid --output %q", o.Output)
	}
	if o.Header && o.Output != output.FormatText {
		return configf("--header only applies to text output")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return configf("--no-match-exit-code must be between 0 and 255")
	}
	if o.Quiet && o.Verbose {
		return &ConfigError{Err: errors.New("--quiet conflicts with --verbose")}
	}
	return nil
}
