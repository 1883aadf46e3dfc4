// Package catalog holds the fixed module and library lists the plugin expects,
// together with the filename conventions derived from each release version.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Release describes one OpenCV build whose modules are copied into the plugin tree.
type Release struct {
	Name    string
	Version *semver.Version
	// Toolset is the Visual Studio toolset directory under install/x64 (vc14, vc15).
	Toolset string
	// WindowsGenerator is the CMake -G value used on windows. Empty for releases
	// that are only copied, never generated.
	WindowsGenerator string
	Modules          []string
	// ImportLibs also copies the Windows .lib import libraries.
	ImportLibs bool
}

// OpenCV is the current release produced by `opencv build`.
var OpenCV = Release{
	Name:             "opencv",
	Version:          semver.MustParse("3.2.0"),
	Toolset:          "vc15",
	WindowsGenerator: "Visual Studio 15 2017 Win64",
	Modules: []string{
		"opencv_core",
		"opencv_augmented_unreality", // plugin code built as a custom OpenCV module
		"opencv_aruco",
		"opencv_calib3d",
		"opencv_features2d", // SimpleBlobDetector for calibration
		"opencv_flann",
		"opencv_imgcodecs",
		"opencv_imgproc",
		"opencv_video", // Kalman filter
		"opencv_videoio",
	},
}

// LegacyOpenCV is the release the deprecated installer copies from build/<Dir>.
var LegacyOpenCV = Release{
	Name:    "opencv-legacy",
	Version: semver.MustParse("3.1.0"),
	Toolset: "vc14",
	Modules: []string{
		"opencv_core",
		"opencv_aur_allocator",
		"opencv_calib3d",
		"opencv_features2d",
		"opencv_videoio",
		"opencv_aruco",
		"opencv_imgproc",
		"opencv_flann",
		"opencv_imgcodecs",
		"opencv_video",
	},
	ImportLibs: true,
}

// CompactVersion joins major, minor and patch without separators (3.2.0 -> 320).
func (r Release) CompactVersion() string {
	return fmt.Sprintf("%d%d%d", r.Version.Major(), r.Version.Minor(), r.Version.Patch())
}

// WindowsDLL returns the shared library name, e.g. opencv_core320.dll.
func (r Release) WindowsDLL(module string) string {
	return module + r.CompactVersion() + ".dll"
}

// WindowsImportLib returns the import library name, e.g. opencv_core320.lib.
func (r Release) WindowsImportLib(module string) string {
	return module + r.CompactVersion() + ".lib"
}

// SharedObjectLink returns the unversioned name, e.g. libopencv_core.so.
func (r Release) SharedObjectLink(module string) string {
	return "lib" + module + ".so"
}

// SharedObject returns the fully versioned name produced by make install,
// e.g. libopencv_core.so.3.2.0.
func (r Release) SharedObject(module string) string {
	return r.SharedObjectLink(module) + "." + r.Version.String()
}

// VersionedSharedObject returns the major.minor name placed in the plugin tree,
// e.g. libopencv_core.so.3.2.
func (r Release) VersionedSharedObject(module string) string {
	return fmt.Sprintf("%s.%d.%d", r.SharedObjectLink(module), r.Version.Major(), r.Version.Minor())
}

// GStreamerLibraries is the allow-list of DLLs copied from a GStreamer installation.
var GStreamerLibraries = []string{
	"libffi-7.dll",
	"libglib-2.0-0.dll",
	"libgmodule-2.0-0.dll",
	"libgobject-2.0-0.dll",
	"libgstapp-1.0-0.dll",
	"libgstaudio-1.0-0.dll",
	"libgstbase-1.0-0.dll",
	"libgstpbutils-1.0-0.dll",
	"libgstreamer-1.0-0.dll",
	"libgstriff-1.0-0.dll",
	"libgsttag-1.0-0.dll",
	"libgstvideo-1.0-0.dll",
	"libintl-8.dll",
	"liborc-0.4-0.dll",
	"libwinpthread-1.dll",
	"libz.dll",
}

var gstreamerAllowList = func() map[string]struct{} {
	set := make(map[string]struct{}, len(GStreamerLibraries))
	for _, name := range GStreamerLibraries {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}()

// IsGStreamerLibrary reports whether a file name is on the allow-list, ignoring case.
func IsGStreamerLibrary(name string) bool {
	_, ok := gstreamerAllowList[strings.ToLower(name)]
	return ok
}
