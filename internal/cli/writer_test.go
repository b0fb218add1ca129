package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFormatsContent(t *testing.T) {
	dir := t.TempDir()
	writer := NewArtifactWriter()

	target, err := writer.Write(dir, "A.swift", "let x = 1   \r\n\n\n\nlet y = 2\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "A.swift"), target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1\n\nlet y = 2\n", string(data))
}

func TestWriteCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Tests", "AppTests")
	writer := NewArtifactWriter()

	target, err := writer.Write(dir, "A.swift", "let x = 1\n")
	require.NoError(t, err)
	assert.FileExists(t, target)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	writer := NewArtifactWriter()

	_, err := writer.Write(dir, "A.swift", "let x = 1\n")
	require.NoError(t, err)

	leftovers, err := filepath.Glob(filepath.Join(dir, ".doppel-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWriteReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "A.swift")
	require.NoError(t, os.WriteFile(target, []byte("old content\n"), 0644))

	writer := NewArtifactWriter()
	_, err := writer.Write(dir, "A.swift", "new content\n")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new content\n", string(data))
}

func TestWriteFailsWhenDirIsFile(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	writer := NewArtifactWriter()
	_, err := writer.Write(blocked, "A.swift", "let x = 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")
}
