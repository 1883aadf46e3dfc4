package copier

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type faultSystem struct {
	base        System
	statErrs    map[string]error
	removeErrs  map[string]error
	createErrs  map[string]error
	symlinkErrs map[string]error

	// partialRemoveErrs removes the path and still reports an error.
	partialRemoveErrs map[string]error
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:              base,
		statErrs:          map[string]error{},
		removeErrs:        map[string]error{},
		createErrs:        map[string]error{},
		symlinkErrs:       map[string]error{},
		partialRemoveErrs: map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) Lstat(name string) (os.FileInfo, error) {
	return f.base.Lstat(name)
}

func (f *faultSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return f.base.ReadDir(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) RemoveAll(path string) error {
	if err, ok := f.removeErrs[normalizePath(path)]; ok {
		return err
	}
	if err, ok := f.partialRemoveErrs[normalizePath(path)]; ok {
		if removeErr := f.base.RemoveAll(path); removeErr != nil {
			return removeErr
		}
		return err
	}
	return f.base.RemoveAll(path)
}

func (f *faultSystem) Remove(name string) error {
	if err, ok := f.removeErrs[normalizePath(name)]; ok {
		return err
	}
	return f.base.Remove(name)
}

func (f *faultSystem) Symlink(oldname string, newname string) error {
	if err, ok := f.symlinkErrs[normalizePath(newname)]; ok {
		return err
	}
	return f.base.Symlink(oldname, newname)
}

func (f *faultSystem) Readlink(name string) (string, error) {
	return f.base.Readlink(name)
}

func (f *faultSystem) Open(name string) (io.ReadCloser, error) {
	return f.base.Open(name)
}

func (f *faultSystem) Create(name string, perm os.FileMode) (io.WriteCloser, error) {
	if err, ok := f.createErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Create(name, perm)
}

func (f *faultSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return f.base.WalkDir(root, fn)
}
