package copier

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// TreeCallbacks observes ReplaceTree. Every field is optional.
type TreeCallbacks struct {
	// Removing is called before an existing destination is deleted.
	Removing func(dst string)
	// RemoveFailed receives deletion errors. The copy only proceeds when the
	// destination is gone afterwards.
	RemoveFailed func(err error)
	// Copied is called after each file or symlink, with its path relative to the source.
	Copied func(rel string)
}

// ReplaceTree copies the directory src to dst after deleting any existing dst.
// A dst that survives a failed delete is an error; the old tree is never merged into.
func ReplaceTree(sys System, src string, dst string, cb TreeCallbacks) error {
	info, err := sys.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf(messages.CopySourceMissingFmt, ErrSourceMissing, src)
		}
		return fmt.Errorf(messages.CopyStatFailedFmt, src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.CopySourceMissingFmt, ErrSourceMissing, src)
	}

	if _, err := sys.Lstat(dst); err == nil {
		if cb.Removing != nil {
			cb.Removing(dst)
		}
		if err := sys.RemoveAll(dst); err != nil {
			removeErr := fmt.Errorf(messages.CopyRemoveTreeFailedFmt, dst, err)
			if cb.RemoveFailed != nil {
				cb.RemoveFailed(removeErr)
			}
			if _, statErr := sys.Lstat(dst); statErr == nil {
				return fmt.Errorf(messages.CopyDestinationSurvivedFmt, dst, removeErr)
			}
		}
	}
	return CopyTree(sys, src, dst, cb.Copied)
}

// CopyTree mirrors the directory src into dst, recreating symlinks as symlinks.
func CopyTree(sys System, src string, dst string, copied func(rel string)) error {
	return sys.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf(messages.CopyWalkFailedFmt, path, walkErr)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		switch {
		case d.IsDir():
			return EnsureDir(sys, target)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := sys.Readlink(path)
			if err != nil {
				return fmt.Errorf(messages.CopyReadLinkFailedFmt, path, err)
			}
			if err := ReplaceSymlink(sys, link, target); err != nil {
				return err
			}
		default:
			if _, err := CopyFile(sys, path, target); err != nil {
				return err
			}
		}
		if copied != nil {
			copied(rel)
		}
		return nil
	})
}

// CountFiles returns the number of non-directory entries under root.
func CountFiles(sys System, root string) (int, error) {
	count := 0
	err := sys.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf(messages.CopyWalkFailedFmt, root, err)
	}
	return count, nil
}
