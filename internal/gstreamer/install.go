// Package gstreamer copies the GStreamer runtime DLLs the plugin loads into its Binaries tree.
package gstreamer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/augmented-unreality/aurdeps/internal/catalog"
	"github.com/augmented-unreality/aurdeps/internal/console"
	"github.com/augmented-unreality/aurdeps/internal/copier"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

// Options configures one install run.
type Options struct {
	Platform platform.Platform
	// Root is the GStreamer installation; its bin directory holds the DLLs.
	Root string
	// Dest is the plugin binaries directory for Platform.
	Dest string
	Libs bool
}

// Installer copies allow-listed GStreamer libraries.
type Installer struct {
	Sys copier.System
	Out *console.Printer
}

// NewInstaller returns an Installer on the real filesystem.
func NewInstaller(out *console.Printer) *Installer {
	return &Installer{Sys: copier.RealSystem{}, Out: out}
}

// Install copies every allow-listed DLL found in Root/bin into Dest and returns the
// written paths. Linux has no GStreamer binaries to install.
func (i *Installer) Install(opts Options) ([]string, error) {
	i.Out.Task("gstreamer install")
	i.Out.Field("platform", opts.Platform.Dir())
	i.Out.Field("gstreamer", opts.Root)

	if !opts.Libs {
		return nil, nil
	}
	i.Out.Section("Libs")
	if opts.Platform != platform.Windows {
		i.Out.Info(messages.GStreamerNoLinuxBinaries)
		return nil, nil
	}

	binDir := filepath.Join(opts.Root, "bin")
	entries, err := i.Sys.ReadDir(binDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(messages.CopySourceMissingFmt, copier.ErrSourceMissing, binDir)
		}
		return nil, fmt.Errorf(messages.GStreamerReadBinFailedFmt, binDir, err)
	}
	if err := copier.EnsureDir(i.Sys, opts.Dest); err != nil {
		return nil, err
	}

	var written []string
	for _, entry := range entries {
		if entry.IsDir() || !catalog.IsGStreamerLibrary(entry.Name()) {
			continue
		}
		src := filepath.Join(binDir, entry.Name())
		i.Out.Copy(src, opts.Dest)
		dst, err := copier.CopyFile(i.Sys, src, opts.Dest)
		if err != nil {
			return written, err
		}
		written = append(written, dst)
	}
	if len(written) == 0 {
		i.Out.Warn(messages.GStreamerNothingFoundFmt, binDir)
	}
	return written, nil
}
