// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
// Encoder itself is tiny and tied to an io.Writer, so we (re)create it per call.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Drain encodes every value from in as one JSON line on out.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//
// It returns the first encode or flush error. Values left in the channel after
// an error are not consumed; callers drain.
func Drain[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	// Always put back to pool and drop references to 'out'.
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for v := range in {
		if err := encode(enc, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
