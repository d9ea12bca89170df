// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA entry. Seq is owned by the record; the reader never
// reuses it.
type Record struct {
	ID  string
	Seq []byte
}

// Reader yields FASTA records one at a time, in file order.
type Reader struct {
	path string
	rc   io.ReadCloser
	sc   *bufio.Scanner

	pending string // header read ahead of the next record
	started bool
	line    int
}

// Open opens path ("-" for stdin, gzip detected) for reading.
func Open(path string) (*Reader, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return NewReader(path, rc), nil
}

// NewReader wraps an already open stream; name is used in error messages.
// Close closes rc.
func NewReader(name string, rc io.ReadCloser) *Reader {
	sc := bufio.NewScanner(rc)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{path: name, rc: rc, sc: sc}
}

// Next returns the next record, or io.EOF once the input is exhausted.
func (r *Reader) Next() (Record, error) {
	var seq []byte
	id := r.pending
	have := r.started
	for r.sc.Scan() {
		r.line++
		line := bytes.TrimSpace(r.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			hdr := parseHeaderID(line[1:])
			if !have {
				id, have, r.started = hdr, true, true
				continue
			}
			r.pending = hdr
			return Record{ID: id, Seq: seq}, nil
		}
		if !have {
			return Record{}, fmt.Errorf("%s:%d: sequence data before first header", r.path, r.line)
		}
		seq = append(seq, line...)
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("%s: fasta scan: %w", r.path, err)
	}
	if !have {
		return Record{}, io.EOF
	}
	r.started = false
	r.pending = ""
	if seq == nil {
		seq = []byte{}
	}
	return Record{ID: id, Seq: seq}, nil
}

// Close releases the underlying stream.
func (r *Reader) Close() error { return r.rc.Close() }

// Each opens path, calls fn for every record and closes the input on every
// return path. It stops at the first error from fn or when ctx is done.
func Each(ctx context.Context, path string, fn func(Record) error) (err error) {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
