// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rap-core/enzyme"
	"rap/internal/appcore"
	"rap/internal/cli"
	"rap/internal/cmdutil"
	"rap/internal/output"
	"rap/internal/version"
	"rap/internal/writers"
)

const name = "rap"

// NewCommand builds the root command. The exit code of the last execution
// is stored in *code.
func NewCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	var opts cli.Options
	cmd := &cobra.Command{
		Use:           name + " [flags] ref.fa [more.fa ...]",
		Short:         "in-silico restriction digest reporting distinct-enzyme fragment pairs",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = execute(cmd.Context(), &opts, args, stdout, stderr)
			return nil
		},
	}
	cli.Register(cmd.Flags(), &opts)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		cli.PrintUsage(c.OutOrStdout(), name, c.Flags())
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		cli.PrintUsage(c.OutOrStdout(), name, c.Flags())
	})
	return cmd
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := cmdutil.ExitOK
	cmd := NewCommand(stdout, stderr, &code)

	if len(argv) == 0 {
		cli.PrintUsage(stdout, name, cmd.Flags())
		return 0
	}

	cmd.SetArgs(argv)
	if err := cmd.ExecuteContext(parent); err != nil {
		return configFailure(stderr, err)
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(ctx context.Context, opts *cli.Options, args []string, stdout, stderr io.Writer) int {
	if opts.Version {
		_, err := fmt.Fprintf(stdout, "%s version %s\n", name, version.Version)
		return writeStatus(stderr, err)
	}
	if opts.ListEnzymes {
		return writeStatus(stderr, output.WriteEnzymeTable(stdout, enzyme.Builtin()))
	}
	if err := cli.Finalize(opts, args); err != nil {
		return configFailure(stderr, err)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	res, err := appcore.Run(ctx, stdout, log, *opts)
	if err != nil {
		code := cmdutil.ExitCode(err)
		switch code {
		case cmdutil.ExitCanceled:
		case cmdutil.ExitConfig:
			return configFailure(stderr, err)
		default:
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return code
	}
	if res.Stats.Fragments == 0 {
		return opts.NoMatchExitCode
	}
	return cmdutil.ExitOK
}

func configFailure(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "error: %v\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", name)
	return cmdutil.ExitConfig
}

// writeStatus maps an error from a direct stdout write to an exit code.
func writeStatus(stderr io.Writer, err error) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return cmdutil.ExitOK
	}
	fmt.Fprintln(stderr, err)
	return cmdutil.ExitIO
}
