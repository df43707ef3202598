package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))

	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0600))
	assert.False(t, DirectoryExists(path), "files are not directories")
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	file, err := CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	assert.True(t, FileExists(path))
}

func TestCreateFile_MissingParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "report.csv")

	_, err := CreateFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory does not exist")
}
