// Package opencv generates OpenCV build files and installs the resulting headers and
// libraries into the plugin tree.
package opencv

import (
	"path/filepath"

	"github.com/augmented-unreality/aurdeps/internal/catalog"
	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

// Layout tells the copy engine where one release's build output lives for a
// platform and where each part goes.
type Layout struct {
	Release  catalog.Release
	Platform platform.Platform
	// InstallDir is where the generated build installed its output.
	InstallDir    string
	IncludeSource string
	IncludeDest   string
	// LibSource holds DLLs on windows and shared objects on linux.
	LibSource string
	// ImportLibSource is empty unless the release ships Windows import libraries.
	ImportLibSource string
	ImportLibDest   string
	BinariesDest    string
}

// CurrentLayout returns the layout of a build produced by Engine.Build.
func CurrentLayout(paths config.Paths, target platform.Platform) Layout {
	install := paths.InstallDir(target)
	layout := Layout{
		Release:       catalog.OpenCV,
		Platform:      target,
		InstallDir:    install,
		IncludeSource: filepath.Join(install, "include"),
		IncludeDest:   paths.IncludeDir,
		BinariesDest:  paths.Binaries(target),
	}
	switch target {
	case platform.Android:
		layout.IncludeSource = filepath.Join(install, "sdk", "native", "jni", "include")
	case platform.Windows:
		layout.LibSource = filepath.Join(install, "x64", catalog.OpenCV.Toolset, "bin")
	case platform.Linux:
		layout.LibSource = filepath.Join(install, "lib")
	}
	return layout
}

// LegacyLayout returns the layout of the older in-tree build under build/<Dir>.
func LegacyLayout(paths config.Paths, target platform.Platform) Layout {
	release := catalog.LegacyOpenCV
	install := paths.LegacyInstallDir(target)
	layout := Layout{
		Release:       release,
		Platform:      target,
		InstallDir:    install,
		IncludeSource: filepath.Join(install, "include"),
		IncludeDest:   paths.IncludeDir,
		BinariesDest:  paths.Binaries(target),
	}
	switch target {
	case platform.Windows:
		binaries := filepath.Join(install, "x64", release.Toolset)
		layout.LibSource = filepath.Join(binaries, "bin")
		if release.ImportLibs {
			layout.ImportLibSource = filepath.Join(binaries, "lib")
			layout.ImportLibDest = paths.StaticLibs(target)
		}
	case platform.Linux:
		layout.LibSource = filepath.Join(paths.LegacyBuildDir(target), "lib")
	}
	return layout
}

// Destinations returns the file names the binaries step leaves in BinariesDest,
// including symlinks. Android is statically linked and has none.
func (l Layout) Destinations() []string {
	var names []string
	for _, module := range l.Release.Modules {
		switch l.Platform {
		case platform.Windows:
			names = append(names, l.Release.WindowsDLL(module))
		case platform.Linux:
			names = append(names, l.Release.VersionedSharedObject(module), l.Release.SharedObjectLink(module))
		}
	}
	return names
}
