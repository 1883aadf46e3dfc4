// Package copier moves headers and compiled libraries from build output into the plugin tree.
package copier

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// ErrSourceMissing is returned when a required source file or directory does not exist.
var ErrSourceMissing = errors.New("source not found")

// CopyFile copies src to dst and returns the path written. When dst is an existing
// directory the file keeps its base name inside it. Permission bits are preserved.
func CopyFile(sys System, src string, dst string) (string, error) {
	info, err := sys.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf(messages.CopySourceMissingFmt, ErrSourceMissing, src)
		}
		return "", fmt.Errorf(messages.CopyStatFailedFmt, src, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf(messages.CopySourceIsDirFmt, src)
	}
	if dstInfo, err := sys.Stat(dst); err == nil && dstInfo.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	in, err := sys.Open(src)
	if err != nil {
		return "", fmt.Errorf(messages.CopyOpenFailedFmt, src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := sys.Create(dst, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf(messages.CopyCreateFailedFmt, dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return "", fmt.Errorf(messages.CopyWriteFailedFmt, src, dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf(messages.CopyWriteFailedFmt, src, dst, err)
	}
	return dst, nil
}

// ReplaceSymlink points link at target, removing whatever link already exists.
// A missing link is not an error.
func ReplaceSymlink(sys System, target string, link string) error {
	if err := sys.Remove(link); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.CopyRemoveLinkFailedFmt, link, err)
	}
	if err := sys.Symlink(target, link); err != nil {
		return fmt.Errorf(messages.CopySymlinkFailedFmt, link, target, err)
	}
	return nil
}

// EnsureDir creates dir and its parents.
func EnsureDir(sys System, dir string) error {
	if err := sys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.CopyCreateDirFailedFmt, dir, err)
	}
	return nil
}
