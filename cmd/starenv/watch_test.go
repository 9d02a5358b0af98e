package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchedPathsResolveSymlinks(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	target := filepath.Join(root, "real")
	require.NoError(t, os.Mkdir(target, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(target, "env.star"), nil, 0o600))

	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))

	files, dirs, err := watchedPaths([]string{
		filepath.Join(link, "env.star"),
		filepath.Join(link, "missing.env"),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		filepath.Join(target, "env.star"):    true,
		filepath.Join(target, "missing.env"): true,
	}, files)
	assert.Equal(t, map[string]bool{target: true}, dirs)
}

func TestWatchedPathsRelative(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Chdir(dir)

	files, dirs, err := watchedPaths([]string{"env.star"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{filepath.Join(dir, "env.star"): true}, files)
	assert.Equal(t, map[string]bool{dir: true}, dirs)
}
