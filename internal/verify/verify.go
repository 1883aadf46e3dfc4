// Package verify compares a plugin binaries directory against the catalog.
package verify

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/augmented-unreality/aurdeps/internal/catalog"
	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/copier"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/opencv"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

// Report is the outcome of comparing one platform directory.
type Report struct {
	Platform   platform.Platform
	Dir        string
	Expected   []string
	Actual     []string
	Missing    []string
	Unexpected []string
	// Diff is a unified diff from Expected to Actual, empty when they match.
	Diff string
}

// OK reports whether the directory matches the catalog exactly.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0
}

// Expected returns the sorted file names a fully installed Binaries/<Dir> holds for target.
func Expected(paths config.Paths, target platform.Platform) []string {
	names := opencv.CurrentLayout(paths, target).Destinations()
	if target == platform.Windows {
		names = append(names, catalog.GStreamerLibraries...)
	}
	sort.Strings(names)
	return names
}

// Binaries compares paths.Binaries(target) with Expected. A missing directory is
// treated as empty. Hidden files are ignored. Windows names match ignoring case.
func Binaries(sys copier.System, paths config.Paths, target platform.Platform) (Report, error) {
	dir := paths.Binaries(target)
	report := Report{
		Platform: target,
		Dir:      dir,
		Expected: Expected(paths, target),
	}

	entries, err := sys.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Report{}, fmt.Errorf(messages.VerifyReadDirFailedFmt, dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		report.Actual = append(report.Actual, entry.Name())
	}
	sort.Strings(report.Actual)

	fold := target == platform.Windows
	report.Missing = difference(report.Expected, report.Actual, fold)
	report.Unexpected = difference(report.Actual, report.Expected, fold)
	if !report.OK() {
		report.Diff = udiff.Unified(
			messages.VerifyExpectedLabel,
			dir,
			lines(report.Expected),
			lines(report.Actual),
		)
	}
	return report, nil
}

func lines(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, "\n") + "\n"
}

// difference returns the names in a that are not in b, comparing lowercased
// names when fold is set.
func difference(a []string, b []string, fold bool) []string {
	key := func(name string) string {
		if fold {
			return strings.ToLower(name)
		}
		return name
	}
	seen := make(map[string]struct{}, len(b))
	for _, name := range b {
		seen[key(name)] = struct{}{}
	}
	var out []string
	for _, name := range a {
		if _, ok := seen[key(name)]; !ok {
			out = append(out, name)
		}
	}
	return out
}
