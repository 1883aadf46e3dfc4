package copier

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func TestReplaceTreeRemovesStaleFiles(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "install", "include")
	dst := filepath.Join(root, "include")
	writeFile(t, filepath.Join(src, "opencv2", "core.hpp"), "core")
	writeFile(t, filepath.Join(src, "opencv2", "aruco", "dictionary.hpp"), "aruco")
	writeFile(t, filepath.Join(dst, "opencv2", "stale.hpp"), "stale")

	var removing string
	var copied []string
	err := ReplaceTree(RealSystem{}, src, dst, TreeCallbacks{
		Removing: func(path string) { removing = path },
		Copied:   func(rel string) { copied = append(copied, filepath.ToSlash(rel)) },
	})
	require.NoError(t, err)

	assert.Equal(t, dst, removing)
	assert.Equal(t, []string{"opencv2/aruco/dictionary.hpp", "opencv2/core.hpp"}, listFiles(t, dst))
	sort.Strings(copied)
	assert.Equal(t, []string{"opencv2/aruco/dictionary.hpp", "opencv2/core.hpp"}, copied)
}

func TestReplaceTreeWithoutExistingDestination(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "nested", "dst")
	writeFile(t, filepath.Join(src, "a.h"), "a")

	called := false
	err := ReplaceTree(RealSystem{}, src, dst, TreeCallbacks{Removing: func(string) { called = true }})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, []string{"a.h"}, listFiles(t, dst))
}

func TestReplaceTreeMissingSource(t *testing.T) {
	root := t.TempDir()
	err := ReplaceTree(RealSystem{}, filepath.Join(root, "nope"), filepath.Join(root, "dst"), TreeCallbacks{})
	require.ErrorIs(t, err, ErrSourceMissing)
}

func TestReplaceTreeSourceIsFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "file")
	writeFile(t, src, "x")
	err := ReplaceTree(RealSystem{}, src, filepath.Join(root, "dst"), TreeCallbacks{})
	require.ErrorIs(t, err, ErrSourceMissing)
}

func TestReplaceTreeFailsWhenDestinationSurvivesDelete(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	writeFile(t, filepath.Join(src, "opencv2", "core.hpp"), "core")
	writeFile(t, filepath.Join(dst, "opencv2", "stale.hpp"), "old")

	sys := newFaultSystem(RealSystem{})
	sys.removeErrs[normalizePath(dst)] = errors.New("locked by editor")

	var reported error
	copied := 0
	err := ReplaceTree(sys, src, dst, TreeCallbacks{
		RemoveFailed: func(err error) { reported = err },
		Copied:       func(string) { copied++ },
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "was not replaced")
	assert.Contains(t, err.Error(), "locked by editor")
	require.Error(t, reported)
	assert.Zero(t, copied)
	assert.Equal(t, []string{"opencv2/stale.hpp"}, listFiles(t, dst))
}

func TestReplaceTreeContinuesWhenDeleteErrorLeavesNothing(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	writeFile(t, filepath.Join(src, "a.h"), "a")
	writeFile(t, filepath.Join(dst, "old.h"), "old")

	sys := newFaultSystem(RealSystem{})
	sys.partialRemoveErrs[normalizePath(dst)] = errors.New("spurious")

	var reported error
	err := ReplaceTree(sys, src, dst, TreeCallbacks{RemoveFailed: func(err error) { reported = err }})
	require.NoError(t, err)
	require.Error(t, reported)
	assert.Equal(t, []string{"a.h"}, listFiles(t, dst))
}

func TestCopyTreePreservesSymlinks(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	writeFile(t, filepath.Join(src, "lib.so.1"), "so")
	require.NoError(t, os.Symlink("lib.so.1", filepath.Join(src, "lib.so")))
	dst := filepath.Join(root, "dst")

	require.NoError(t, CopyTree(RealSystem{}, src, dst, nil))
	target, err := os.Readlink(filepath.Join(dst, "lib.so"))
	require.NoError(t, err)
	assert.Equal(t, "lib.so.1", target)
}

func TestCountFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a"), "a")
	writeFile(t, filepath.Join(root, "d", "b"), "b")
	writeFile(t, filepath.Join(root, "d", "e", "c"), "c")

	count, err := CountFiles(RealSystem{}, root)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = CountFiles(RealSystem{}, filepath.Join(root, "missing"))
	require.Error(t, err)
}
