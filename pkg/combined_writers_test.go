package pkg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCombinedWriter(t *testing.T) {
	var b1, b2 bytes.Buffer
	cw := NewCombinedWriter(&b1, &b2)

	n, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "hello", b1.String())
	assert.Equal(t, "hello", b2.String())
}

func TestCombinedWriter_oneFails(t *testing.T) {
	var b bytes.Buffer
	cw := NewCombinedWriter(failingWriter{}, &b)

	n, err := cw.Write([]byte("hello"))
	require.Error(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", b.String())
}
