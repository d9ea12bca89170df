package cmdutil

import (
	"context"
	"errors"

	"rap-core/enzyme"
	"rap/internal/cli"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitConfig   = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// IsConfig reports whether err is a configuration error, including enzyme
// definition errors.
func IsConfig(err error) bool {
	var ce *cli.ConfigError
	var se *enzyme.SpecError
	return errors.As(err, &ce) || errors.As(err, &se)
}

// ExitCode maps an error to the process exit code. Anything that is not a
// configuration error or a cancellation is an I/O failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case IsConfig(err):
		return ExitConfig
	default:
		return ExitIO
	}
}
