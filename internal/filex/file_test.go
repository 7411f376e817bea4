package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDirCreatesNested(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b")

	got, err := EnsureDir(target)
	require.NoError(t, err)
	require.Equal(t, target, got)

	info, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureDirRelative(t *testing.T) {
	base := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(base))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := EnsureDir("exports")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))

	info, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureDirExisting(t *testing.T) {
	base := t.TempDir()
	got, err := EnsureDir(base)
	require.NoError(t, err)
	require.Equal(t, base, got)
}
