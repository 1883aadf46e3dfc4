// Package platform maps target platforms to the plugin's per-platform directory names.
package platform

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// Platform is a target platform key as used by the OpenCV cache-settings files.
type Platform string

const (
	Android Platform = "android"
	Linux   Platform = "linux"
	Windows Platform = "windows"
)

// dirs maps each platform to its subdirectory under Binaries/ and install/.
var dirs = map[Platform]string{
	Windows: "Win64",
	Linux:   "Linux",
	Android: "Android",
}

var hostGOOS = runtime.GOOS

// All returns every known platform sorted by key.
func All() []Platform {
	out := make([]Platform, 0, len(dirs))
	for p := range dirs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dir returns the destination subdirectory name (Win64, Linux, Android).
func (p Platform) Dir() string {
	return dirs[p]
}

func (p Platform) String() string {
	return string(p)
}

// Parse resolves either a platform key ("windows") or its directory name ("Win64").
// Matching is case-insensitive.
func Parse(value string) (Platform, error) {
	trimmed := strings.TrimSpace(value)
	for p, dir := range dirs {
		if strings.EqualFold(trimmed, string(p)) || strings.EqualFold(trimmed, dir) {
			return p, nil
		}
	}
	return "", fmt.Errorf(messages.PlatformUnknownFmt, value)
}

// FromGOOS maps a Go operating system name to a platform.
// Only windows and linux hosts are recognized; android is a cross-compile target.
func FromGOOS(goos string) (Platform, bool) {
	switch strings.ToLower(goos) {
	case "windows":
		return Windows, true
	case "linux":
		return Linux, true
	}
	return "", false
}

// Host returns the platform of the running operating system.
func Host() (Platform, bool) {
	return FromGOOS(hostGOOS)
}

// Set is an ordered list of platforms accepted by a command.
type Set []Platform

var (
	// BuildSet is accepted by `opencv build` and `opencv copy`.
	BuildSet = Set{Android, Linux, Windows}
	// InstallerSet is accepted by the GStreamer and legacy OpenCV installers.
	InstallerSet = Set{Windows, Linux}
)

// Contains reports whether p is part of the set.
func (s Set) Contains(p Platform) bool {
	for _, candidate := range s {
		if candidate == p {
			return true
		}
	}
	return false
}

// Describe lists the set as "key (Dir)" pairs for help and error text.
func (s Set) Describe() string {
	parts := make([]string, 0, len(s))
	for _, p := range s {
		parts = append(parts, fmt.Sprintf("%s (%s)", p, p.Dir()))
	}
	return strings.Join(parts, ", ")
}

// Resolve parses value and checks membership. An empty value selects the host
// platform, falling back to fallback when the host is not in the set.
// The returned bool is false when the fallback was used.
func (s Set) Resolve(value string, fallback Platform) (Platform, bool, error) {
	if strings.TrimSpace(value) == "" {
		if host, ok := Host(); ok && s.Contains(host) {
			return host, true, nil
		}
		return fallback, false, nil
	}
	p, err := Parse(value)
	if err != nil {
		return "", false, err
	}
	if !s.Contains(p) {
		return "", false, fmt.Errorf(messages.PlatformNotAllowedFmt, value, s.Describe())
	}
	return p, true, nil
}
