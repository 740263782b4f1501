package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPromptSegments(t *testing.T) {
	out := &bytes.Buffer{}
	n, err := promptSegments(strings.NewReader("abc\n-3\n0\n 7 \n"), out)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, 3, strings.Count(out.String(), "Please enter a positive integer."))
}

func TestPromptSegmentsNoInput(t *testing.T) {
	_, err := promptSegments(strings.NewReader("foo\n"), &bytes.Buffer{})
	require.EqualError(t, err, "no segment count given")
}

func TestDemo(t *testing.T) {
	out := &bytes.Buffer{}
	app := createApp(strings.NewReader(""), out)
	require.NoError(t, app.Run([]string{"srarq", "demo", "--segments", "50"}))
	require.Contains(t, out.String(), "Acknowledgments received: 50 of 50")
	require.Contains(t, out.String(), "Segments received: 50 (0 duplicates)")
}

func TestDemoPromptsForSegments(t *testing.T) {
	out := &bytes.Buffer{}
	app := createApp(strings.NewReader("12\n"), out)
	require.NoError(t, app.Run([]string{"srarq", "demo"}))
	require.Contains(t, out.String(), "Total number of segments: ")
	require.Contains(t, out.String(), "Acknowledgments received: 12 of 12")
}

func TestDemoWithTracing(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}
	app := createApp(strings.NewReader(""), out)
	require.NoError(t, app.Run([]string{
		"srarq",
		"--qlog-dir", dir,
		"--metrics-addr", "127.0.0.1:0",
		"--max-window", "8",
		"demo", "-n", "20",
	}))
	require.Contains(t, out.String(), "Acknowledgments received: 20 of 20")

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		require.Equal(t, ".qlog", filepath.Ext(f.Name()))
		require.True(t, strings.HasSuffix(f.Name(), "_sender.qlog") || strings.HasSuffix(f.Name(), "_receiver.qlog"), f.Name())
	}
}

func TestInvalidLogLevel(t *testing.T) {
	app := createApp(strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, app.Run([]string{"srarq", "--log-level", "verbose", "demo", "-n", "1"}))
}

func TestSendWithoutReceiver(t *testing.T) {
	app := createApp(strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, app.Run([]string{"srarq", "send", "--addr", "127.0.0.1:1", "-n", "5"}))
}
