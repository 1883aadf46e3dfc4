package opencv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/augmented-unreality/aurdeps/internal/cmake"
	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/console"
	"github.com/augmented-unreality/aurdeps/internal/copier"
)

type fakeRunner struct {
	results []error
	calls   []cmake.Invocation
}

func (r *fakeRunner) Run(_ context.Context, inv cmake.Invocation) error {
	r.calls = append(r.calls, inv)
	if len(r.calls) > len(r.results) {
		return nil
	}
	return r.results[len(r.calls)-1]
}

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func newTestEngine(t *testing.T, runner cmake.Runner) (*Engine, *bytes.Buffer) {
	t.Helper()
	noColor(t)
	var out bytes.Buffer
	return &Engine{
		Paths:           config.DefaultPaths(t.TempDir()),
		Config:          config.Default().OpenCV,
		Sys:             copier.RealSystem{},
		Runner:          runner,
		Out:             console.New(&out, false),
		GeneratorStdout: &out,
		GeneratorStderr: &out,
	}, &out
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// populate writes every source file layout expects, plus a few headers and an unrelated file.
func populate(t *testing.T, layout Layout) {
	t.Helper()
	writeFile(t, filepath.Join(layout.IncludeSource, "opencv2", "core.hpp"), "core")
	writeFile(t, filepath.Join(layout.IncludeSource, "opencv2", "aruco.hpp"), "aruco")
	for _, module := range layout.Release.Modules {
		if layout.LibSource == "" {
			continue
		}
		writeFile(t, filepath.Join(layout.LibSource, layout.Release.WindowsDLL(module)), module)
		writeFile(t, filepath.Join(layout.LibSource, layout.Release.SharedObject(module)), module)
		if layout.ImportLibSource != "" {
			writeFile(t, filepath.Join(layout.ImportLibSource, layout.Release.WindowsImportLib(module)), module)
		}
	}
	if layout.LibSource != "" {
		writeFile(t, filepath.Join(layout.LibSource, "opencv_unrelated320.dll"), "x")
	}
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func sorted(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
