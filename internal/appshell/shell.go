// Package appshell is the process entry shared by the commands.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"rap/internal/cmdutil"
)

// Main runs run with a context canceled by SIGINT or SIGTERM and exits with
// its code. An interrupted run always exits 130.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}

	stop()
	os.Exit(code)
}
