// internal/cli/options_test.go
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	var o Options
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Register(fs, &o)
	require.NoError(t, fs.Parse(args))
	return o, Finalize(&o, fs.Args())
}

func TestDefaults(t *testing.T) {
	o, err := parse(t, "-e", "A:AATT:1", "ref.fa")
	require.NoError(t, err)
	assert.Equal(t, 0, o.Lower)
	assert.Equal(t, 10000, o.Upper)
	assert.Equal(t, "text", o.Output)
	assert.False(t, o.Header)
	assert.Equal(t, 0, o.NoMatchExitCode)
	assert.Equal(t, []string{"ref.fa"}, o.SeqFiles)
}

func TestEnzymeOrderAndInputs(t *testing.T) {
	o, err := parse(t,
		"-e", "B:GGCC:2", "--enzyme", "A:AATT:1", "-e", "EcoRI",
		"-l", "5", "--upper=100", "-o", "jsonl",
		"ref.fa", "-", "extra.fa",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"B:GGCC:2", "A:AATT:1", "EcoRI"}, o.Enzymes)
	assert.Equal(t, []string{"ref.fa", "-", "extra.fa"}, o.SeqFiles)
	assert.Equal(t, 5, o.Window().Lower)
	assert.Equal(t, 100, o.Window().Upper)
}

func TestEnzymeFileAlone(t *testing.T) {
	_, err := parse(t, "--enzyme-file", "enz.yaml", "ref.fa")
	assert.NoError(t, err)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no enzymes", []string{"ref.fa"}},
		{"no inputs", []string{"-e", "A:AATT:1"}},
		{"lower negative", []string{"-e", "A:AATT:1", "-l", "-1", "ref.fa"}},
		{"upper too large", []string{"-e", "A:AATT:1", "-u", "10001", "ref.fa"}},
		{"lower too large", []string{"-e", "A:AATT:1", "-l", "20000", "ref.fa"}},
		{"bad output", []string{"-e", "A:AATT:1", "-o", "xml", "ref.fa"}},
		{"header on json", []string{"-e", "A:AATT:1", "-o", "json", "--header", "ref.fa"}},
		{"bad exit code", []string{"-e", "A:AATT:1", "--no-match-exit-code", "300", "ref.fa"}},
		{"quiet and verbose", []string{"-e", "A:AATT:1", "-q", "--verbose", "ref.fa"}},
		{"unmatched glob", []string{"-e", "A:AATT:1", filepath.Join(t.TempDir(), "*.fa")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			require.Error(t, err)
			var ce *ConfigError
			assert.True(t, errors.As(err, &ce), "want *ConfigError, got %T", err)
		})
	}
}

func TestBoundsAtLimits(t *testing.T) {
	o, err := parse(t, "-e", "A:AATT:1", "-l", "10000", "-u", "0", "ref.fa")
	require.NoError(t, err)
	assert.Equal(t, 10000, o.Lower)
	assert.Equal(t, 0, o.Upper)
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(">x\nA\n"), 0o644))
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa"), "-"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.fa"), filepath.Join(dir, "b.fa"), "-"}, got)
}
