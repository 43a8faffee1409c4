package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txtzip/lzjs"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLI_CompressThenDecompress_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	in := writeTemp(t, dir, "input.txt", "abracadabra abracadabra abracadabra")
	compressedOut := filepath.Join(dir, "compressed.txt")
	decompressedOut := filepath.Join(dir, "decompressed.txt")

	root := newRootCmd()
	root.SetArgs([]string{"compress", "--out", compressedOut, in})
	require.NoError(t, root.Execute())

	root = newRootCmd()
	root.SetArgs([]string{"decompress", "--out", decompressedOut, compressedOut})
	require.NoError(t, root.Execute())

	got, err := os.ReadFile(decompressedOut)
	require.NoError(t, err)
	assert.Equal(t, "abracadabra abracadabra abracadabra\n", string(got))
}

func TestCLI_CompressBase64_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	in := writeTemp(t, dir, "input.txt", "Hello, CLI world!")
	compressedOut := filepath.Join(dir, "compressed.b64")

	root := newRootCmd()
	root.SetArgs([]string{"compress", "--base64", "--out", compressedOut, in})
	require.NoError(t, root.Execute())

	raw, err := os.ReadFile(compressedOut)
	require.NoError(t, err)

	decoded, err := lzjs.DecompressFromBase64(trimTrailingNewline(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "Hello, CLI world!", decoded)
}

func TestCLI_Roundtrip_MultipleFilesReportsMatch(t *testing.T) {
	dir := t.TempDir()
	a := writeTemp(t, dir, "a.txt", "first file contents, repeated repeated repeated")
	b := writeTemp(t, dir, "b.txt", "second file, different text entirely")

	stdout := captureStdout(t, func() {
		root := newRootCmd()
		root.SetArgs([]string{"roundtrip", a, b})
		require.NoError(t, root.Execute())
	})

	assert.Contains(t, stdout, "match=true")
	assert.Equal(t, 2, strings.Count(stdout, "match=true"))
}

func TestCLI_MultipleFilesRejectOutFlag(t *testing.T) {
	dir := t.TempDir()
	a := writeTemp(t, dir, "a.txt", "one")
	b := writeTemp(t, dir, "b.txt", "two")

	root := newRootCmd()
	root.SetArgs([]string{"compress", "--out", filepath.Join(dir, "out.txt"), a, b})
	assert.Error(t, root.Execute())
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func trimTrailingNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
