package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// Environment variables read by aurdeps.
const (
	EnvPluginRoot    = "AURDEPS_PLUGIN_ROOT"
	EnvGStreamerRoot = "GSTREAMER_1_0_ROOT_X86_64"
)

var lookupEnv = os.LookupEnv

// GStreamerRoot returns the default GStreamer root: the environment, then the config file, then ".".
func (c Config) GStreamerRoot() string {
	if value, ok := lookupEnv(EnvGStreamerRoot); ok && strings.TrimSpace(value) != "" {
		return value
	}
	if strings.TrimSpace(c.GStreamer.Root) != "" {
		return c.GStreamer.Root
	}
	return "."
}

// PluginRootFromEnv returns AURDEPS_PLUGIN_ROOT when it is set and non-empty.
func PluginRootFromEnv() (string, bool) {
	value, ok := lookupEnv(EnvPluginRoot)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// ExpandPath expands a leading ~ and returns an absolute, cleaned path.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return abs, nil
}
