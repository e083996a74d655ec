package scratch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ezerfernandes/fencedit/internal/scratch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixed = time.UnixMilli(1700000000123)

func TestName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fencedit-codeblock-1700000000123.py", scratch.Name("fencedit-codeblock", "py", fixed))
}

func TestDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := &scratch.Dir{Path: dir, Now: func() time.Time { return fixed }}

	path, err := store.Create("block", "go", "package main\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "block-1700000000123.go"), path)

	content, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\n", content)

	require.NoError(t, store.Remove(path))

	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = store.Read(path)
	require.Error(t, err)
}

func TestDirNeverOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := &scratch.Dir{Path: dir, Now: func() time.Time { return fixed }}

	taken := filepath.Join(dir, "block-1700000000123.go")
	require.NoError(t, os.WriteFile(taken, []byte("keep"), 0o600))

	_, err := store.Create("block", "go", "package main\n")
	require.ErrorIs(t, err, os.ErrExist)

	data, err := os.ReadFile(taken)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestDirDefaultsToTempDir(t *testing.T) {
	t.Parallel()

	store := new(scratch.Dir)

	path, err := store.Create("fencedit-test", "txt", "")
	require.NoError(t, err)

	defer store.Remove(path) //nolint:errcheck

	assert.Equal(t, filepath.Clean(os.TempDir()), filepath.Dir(path))
}

func TestMem(t *testing.T) {
	t.Parallel()

	store := scratch.NewMem()
	store.Now = func() time.Time { return fixed }

	path, err := store.Create("block", "sh", "ls\n")
	require.NoError(t, err)
	assert.Equal(t, "block-1700000000123.sh", path)
	assert.True(t, store.Exists(path))

	require.NoError(t, store.Write(path, "ls -l\n"))

	content, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "ls -l\n", content)

	require.NoError(t, store.Remove(path))
	assert.False(t, store.Exists(path))
}
