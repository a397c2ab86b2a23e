package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/huffpack/internal/logger"
)

func TestCompressDecompress(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	packed := filepath.Join(dir, "input.huff")
	restored := filepath.Join(dir, "restored.txt")

	content := []byte("she sells sea shells by the sea shore")
	require.NoError(t, os.WriteFile(src, content, 0o666))

	var logs, dump strings.Builder
	logg := logger.New(&logs)
	opts := options{verbose: true, verify: true, dump: &dump}

	require.NoError(t, compress(logg, opts, src, packed))
	require.NoError(t, decompress(logg, options{dump: &dump}, packed, restored))

	actual, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, content, actual)

	require.Contains(t, logs.String(), "[INFO] file "+src+" compressed from 37 bytes")
	require.Contains(t, logs.String(), "[INFO] verified ")
	require.True(t, strings.HasPrefix(dump.String(), "CodeTable{\n"))
}

func TestCompressCreatesMissingInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.txt")
	packed := filepath.Join(dir, "missing.huff")

	var logs strings.Builder
	logg := logger.New(&logs)

	require.NoError(t, compress(logg, options{create: true}, src, packed))

	actual, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, defaultContent, string(actual))
	require.Contains(t, logs.String(), "[INFO] created file "+src)
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.txt")

	var logs strings.Builder
	logg := logger.New(&logs)

	err := compress(logg, options{}, src, filepath.Join(dir, "out.huff"))
	require.EqualError(t, err, "no such source file "+src)

	err = decompress(logg, options{}, src, filepath.Join(dir, "out.txt"))
	require.EqualError(t, err, "no such source file "+src)
}
