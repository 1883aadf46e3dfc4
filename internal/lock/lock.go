// Package lock serializes writers to a plugin tree with an advisory file lock.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// ErrLocked is returned when another process already holds the lock.
var ErrLocked = errors.New("plugin tree is locked")

// Lock is an acquired advisory lock.
type Lock struct {
	path  string
	flock *flock.Flock
}

// Acquire takes the lock at path without blocking, creating the parent directory if needed.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.LockCreateDirFailedFmt, path, err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf(messages.LockAcquireFailedFmt, path, err)
	}
	if !ok {
		return nil, fmt.Errorf(messages.LockHeldFmt, ErrLocked, path)
	}
	return &Lock{path: path, flock: fl}, nil
}

// Release drops the lock. The lock file is left in place.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf(messages.LockReleaseFailedFmt, l.path, err)
	}
	return nil
}

// With runs fn while holding the lock at path.
func With(path string, fn func() error) (err error) {
	l, err := Acquire(path)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := l.Release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()
	return fn()
}
