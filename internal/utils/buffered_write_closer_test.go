package utils

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type nopCloser struct{ closed bool }

func (c *nopCloser) Close() error {
	c.closed = true
	return nil
}

func TestBufferedWriteCloserFlushesOnClose(t *testing.T) {
	buf := &bytes.Buffer{}
	closer := &nopCloser{}
	w := NewBufferedWriteCloser(bufio.NewWriter(buf), closer)
	_, err := w.Write([]byte("foobar"))
	require.NoError(t, err)
	require.Zero(t, buf.Len())
	require.NoError(t, w.Close())
	require.Equal(t, "foobar", buf.String())
	require.True(t, closer.closed)
}
