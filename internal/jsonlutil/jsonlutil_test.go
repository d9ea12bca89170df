package jsonlutil

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrain(t *testing.T) {
	in := make(chan int, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)

	var buf bytes.Buffer
	err := Drain(&buf, in, func(enc *json.Encoder, v int) error {
		return enc.Encode(map[string]int{"n": v})
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"n\":1}\n{\"n\":2}\n{\"n\":3}\n", buf.String())
}
