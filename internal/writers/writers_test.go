package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rap-core/digest"
	"rap/internal/output"
	"rap/pkg/api"
)

var frags = []digest.Fragment{
	{SequenceID: "s", Start: 1, End: 17, Upstream: "A", Length: 15, Downstream: "B", Seq: "ATTCCCCCCCCCCGG"},
	{SequenceID: "s", Start: 16, End: 40, Upstream: "B", Length: 23, Downstream: "A", Seq: "CCAAAAAAAAAAAAAAAAAAAAA"},
}

func run(t *testing.T, format string, opt Options) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := WriteFragments(&buf, format, opt, feed(frags...))
	return buf.String(), err
}

func feed(list ...digest.Fragment) <-chan digest.Fragment {
	in := make(chan digest.Fragment, len(list))
	for _, f := range list {
		in <- f
	}
	close(in)
	return in
}

func TestEveryFormatHasAWriter(t *testing.T) {
	for _, f := range output.Formats {
		_, err := Lookup(f)
		assert.NoError(t, err, f)
	}
}

func TestUnknownFormatError(t *testing.T) {
	_, err := run(t, "nope-format", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fragment format")
}

func TestTextWriter(t *testing.T) {
	got, err := run(t, "text", Options{})
	require.NoError(t, err)
	assert.Equal(t, "s\t1\t17\tA\t15\tB\ns\t16\t40\tB\t23\tA\n", got)

	got, err = run(t, "text", Options{Header: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, output.TSVHeader+"\n"))
}

func TestJSONWriter(t *testing.T) {
	got, err := run(t, "json", Options{})
	require.NoError(t, err)
	var list []api.FragmentV1
	require.NoError(t, json.Unmarshal([]byte(got), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[1].Upstream)
}

func TestJSONLWriter(t *testing.T) {
	got, err := run(t, "jsonl", Options{})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 2)
	var f api.FragmentV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &f))
	assert.Equal(t, 15, f.Length)
}

func TestGFFAndFASTAWriters(t *testing.T) {
	got, err := run(t, "gff", Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(got, "\n"))

	got, err = run(t, "fasta", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(got, ">"))
}

func TestNeedSeq(t *testing.T) {
	assert.True(t, NeedSeq("fasta"))
	assert.False(t, NeedSeq("text"))
	assert.False(t, NeedSeq("json"))
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteErrorsAreReturned(t *testing.T) {
	err := WriteFragments(failWriter{syscall.EPIPE}, "text", Options{}, feed(frags[0]))
	assert.True(t, IsBrokenPipe(err))

	boom := errors.New("disk full")
	err = WriteFragments(failWriter{boom}, "text", Options{}, feed(frags[0]))
	assert.ErrorIs(t, err, boom)
}

// A failing writer returns without draining its input, leaving the sender
// to notice and stop.
func TestWriteErrorDoesNotDrain(t *testing.T) {
	boom := errors.New("disk full")
	in := make(chan digest.Fragment, 1)
	done := make(chan error, 1)
	go func() { done <- WriteFragments(failWriter{boom}, "fasta", Options{}, in) }()

	// larger than the bufio buffer, so the first record reaches failWriter
	big := frags[0]
	big.Seq = strings.Repeat("A", 8192)
	in <- big
	assert.ErrorIs(t, <-done, boom)
	in <- big
	assert.Len(t, in, 1)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(errors.New("x")))
}
