package config

import (
	"path/filepath"

	"github.com/augmented-unreality/aurdeps/internal/platform"
)

// ConfigFileName is the optional config file inside the ThirdParty directory.
const ConfigFileName = "aurdeps.toml"

// LockFileName is the advisory lock file inside the Binaries directory.
const LockFileName = ".aurdeps.lock"

// Paths holds the resolved locations inside a plugin tree.
type Paths struct {
	Root          string
	ThirdParty    string
	ConfigPath    string
	OpenCVSource  string
	CMakeSettings string
	OpenCVInstall string
	OpenCVBuild   string
	IncludeDir    string
	StaticLibDir  string
	BinariesRoot  string
	LockPath      string
}

// DefaultPaths returns the standard layout for a plugin root.
func DefaultPaths(root string) Paths {
	thirdParty := filepath.Join(root, "ThirdParty")
	opencv := filepath.Join(thirdParty, "opencv")
	binaries := filepath.Join(root, "Binaries")
	return Paths{
		Root:          root,
		ThirdParty:    thirdParty,
		ConfigPath:    filepath.Join(thirdParty, ConfigFileName),
		OpenCVSource:  filepath.Join(opencv, "src", "opencv"),
		CMakeSettings: filepath.Join(opencv, "cmake_settings"),
		OpenCVInstall: filepath.Join(opencv, "install"),
		OpenCVBuild:   filepath.Join(opencv, "build"),
		IncludeDir:    filepath.Join(opencv, "include"),
		StaticLibDir:  filepath.Join(opencv, "lib"),
		BinariesRoot:  binaries,
		LockPath:      filepath.Join(binaries, LockFileName),
	}
}

// CacheSettings returns the predefined generator cache file for p.
func (p Paths) CacheSettings(target platform.Platform) string {
	return filepath.Join(p.CMakeSettings, string(target)+".cmake")
}

// InstallDir returns where the generated build installs its output for p.
func (p Paths) InstallDir(target platform.Platform) string {
	return filepath.Join(p.OpenCVInstall, target.Dir())
}

// LegacyInstallDir returns the install directory used by the older in-tree build layout.
func (p Paths) LegacyInstallDir(target platform.Platform) string {
	return filepath.Join(p.OpenCVBuild, target.Dir(), "install")
}

// LegacyBuildDir returns the older in-tree build directory for p.
func (p Paths) LegacyBuildDir(target platform.Platform) string {
	return filepath.Join(p.OpenCVBuild, target.Dir())
}

// StaticLibs returns the directory that receives import libraries for p.
func (p Paths) StaticLibs(target platform.Platform) string {
	return filepath.Join(p.StaticLibDir, target.Dir())
}

// Binaries returns the plugin binaries directory for p.
func (p Paths) Binaries(target platform.Platform) string {
	return filepath.Join(p.BinariesRoot, target.Dir())
}
