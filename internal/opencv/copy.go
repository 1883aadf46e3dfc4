package opencv

import (
	"path/filepath"

	"github.com/augmented-unreality/aurdeps/internal/copier"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

// CopyOptions selects which parts of the build output are copied.
type CopyOptions struct {
	Includes bool
	Binaries bool
}

// CopyResult lists what a copy wrote.
type CopyResult struct {
	IncludeFiles int
	// Binaries holds every file and symlink written, as absolute paths.
	Binaries []string
}

// Copy moves the build output described by layout into the plugin tree. Headers
// replace the include directory wholesale. A missing source file stops the copy.
func (e *Engine) Copy(layout Layout, opts CopyOptions) (CopyResult, error) {
	e.Out.Task("copy")
	e.Out.Field("platform", layout.Platform.String())
	e.Out.Field("release", layout.Release.Version.String())
	e.Out.Field("source directory", layout.InstallDir)
	e.Out.Field("destination directory", layout.BinariesDest)

	var result CopyResult
	if opts.Includes {
		count, err := e.copyIncludes(layout)
		if err != nil {
			return result, err
		}
		result.IncludeFiles = count
	}
	if opts.Binaries {
		written, err := e.copyBinaries(layout)
		result.Binaries = written
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func (e *Engine) copyIncludes(layout Layout) (int, error) {
	e.Out.Section("Includes")
	e.Out.Copy(layout.IncludeSource, layout.IncludeDest)

	total, err := copier.CountFiles(e.Sys, layout.IncludeSource)
	if err != nil {
		total = -1
	}
	bar := e.Out.Progress(total, messages.OpenCVIncludesProgress)
	copied := 0
	err = copier.ReplaceTree(e.Sys, layout.IncludeSource, layout.IncludeDest, copier.TreeCallbacks{
		Removing: func(path string) {
			e.Out.Info(messages.OpenCVDeletingDirFmt, path)
		},
		RemoveFailed: func(err error) {
			e.Out.Warn(messages.OpenCVDeleteFailedFmt, err)
		},
		Copied: func(string) {
			copied++
			_ = bar.Add(1)
		},
	})
	_ = bar.Finish()
	return copied, err
}

func (e *Engine) copyBinaries(layout Layout) ([]string, error) {
	e.Out.Section("Libs")
	switch layout.Platform {
	case platform.Windows:
		return e.copyWindows(layout)
	case platform.Linux:
		return e.copyLinux(layout)
	default:
		e.Out.Success(messages.OpenCVAndroidStatic)
		return nil, nil
	}
}

func (e *Engine) copyWindows(layout Layout) ([]string, error) {
	if err := copier.EnsureDir(e.Sys, layout.BinariesDest); err != nil {
		return nil, err
	}
	var written []string
	for _, module := range layout.Release.Modules {
		dst, err := e.copyOne(filepath.Join(layout.LibSource, layout.Release.WindowsDLL(module)), layout.BinariesDest)
		if err != nil {
			return written, err
		}
		written = append(written, dst)
	}
	if layout.ImportLibSource == "" {
		return written, nil
	}
	if err := copier.EnsureDir(e.Sys, layout.ImportLibDest); err != nil {
		return written, err
	}
	for _, module := range layout.Release.Modules {
		dst, err := e.copyOne(filepath.Join(layout.ImportLibSource, layout.Release.WindowsImportLib(module)), layout.ImportLibDest)
		if err != nil {
			return written, err
		}
		written = append(written, dst)
	}
	return written, nil
}

// copyLinux copies each lib<m>.so.X.Y.Z to lib<m>.so.X.Y and points lib<m>.so at it.
// The link target is the bare file name so the Binaries tree stays relocatable.
func (e *Engine) copyLinux(layout Layout) ([]string, error) {
	if err := copier.EnsureDir(e.Sys, layout.BinariesDest); err != nil {
		return nil, err
	}
	var written []string
	for _, module := range layout.Release.Modules {
		versioned := layout.Release.VersionedSharedObject(module)
		dst, err := e.copyOne(filepath.Join(layout.LibSource, layout.Release.SharedObject(module)), filepath.Join(layout.BinariesDest, versioned))
		if err != nil {
			return written, err
		}
		written = append(written, dst)

		link := filepath.Join(layout.BinariesDest, layout.Release.SharedObjectLink(module))
		if err := copier.ReplaceSymlink(e.Sys, versioned, link); err != nil {
			return written, err
		}
		written = append(written, link)
	}
	return written, nil
}

func (e *Engine) copyOne(src string, dst string) (string, error) {
	e.Out.Copy(src, dst)
	return copier.CopyFile(e.Sys, src, dst)
}
