package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// IsBrokenPipe reports whether err comes from writing to a consumer that
// went away, as in `rap ... | head`.
func IsBrokenPipe(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, syscall.EPIPE), errors.Is(err, io.ErrClosedPipe), errors.Is(err, os.ErrClosed):
		return true
	}
	return false
}
