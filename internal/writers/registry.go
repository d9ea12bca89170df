// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"rap-core/digest"
)

// StreamFunc drains in and writes every fragment to w.
type StreamFunc func(w io.Writer, in <-chan digest.Fragment, opt Options) error

// Options carries per-run presentation switches.
type Options struct {
	Header bool
}

// Writer registry (format → handler). Register in init() blocks.
var fragmentWriters = map[string]StreamFunc{}

// Register adds or replaces the handler for format (last wins).
func Register(format string, fn StreamFunc) { fragmentWriters[format] = fn }

// Lookup returns the handler registered for format.
func Lookup(format string) (StreamFunc, error) {
	fn, ok := fragmentWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown fragment format %q (no writer registered)", format)
	}
	return fn, nil
}
