// Package config loads the optional aurdeps.toml file and resolves plugin tree paths.
package config

import "github.com/augmented-unreality/aurdeps/internal/catalog"

// DefaultMakeJobs is the parallelism suggested in the make hint.
const DefaultMakeJobs = 8

// Config is the root of aurdeps.toml.
type Config struct {
	OpenCV    OpenCVConfig    `toml:"opencv"`
	GStreamer GStreamerConfig `toml:"gstreamer"`
}

// OpenCVConfig controls how the build files generator is invoked.
type OpenCVConfig struct {
	CMake            string `toml:"cmake"`
	WindowsGenerator string `toml:"windows_generator"`
	MakeJobs         int    `toml:"make_jobs"`
}

// GStreamerConfig points at a local GStreamer runtime install.
type GStreamerConfig struct {
	Root string `toml:"root"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		OpenCV: OpenCVConfig{
			CMake:            "cmake",
			WindowsGenerator: catalog.OpenCV.WindowsGenerator,
			MakeJobs:         DefaultMakeJobs,
		},
	}
}
