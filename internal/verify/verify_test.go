package verify

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/copier"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

type readDirFault struct {
	copier.RealSystem
	err error
}

func (f readDirFault) ReadDir(string) ([]os.DirEntry, error) {
	return nil, f.err
}

func fill(t *testing.T, dir string, names []string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
}

func TestExpected(t *testing.T) {
	paths := config.DefaultPaths(t.TempDir())

	windows := Expected(paths, platform.Windows)
	assert.Len(t, windows, 10+16)
	assert.Contains(t, windows, "opencv_core320.dll")
	assert.Contains(t, windows, "libgstreamer-1.0-0.dll")
	assert.IsNonDecreasing(t, windows)

	linux := Expected(paths, platform.Linux)
	assert.Len(t, linux, 20)
	assert.Contains(t, linux, "libopencv_core.so")
	assert.Contains(t, linux, "libopencv_core.so.3.2")

	assert.Empty(t, Expected(paths, platform.Android))
}

func TestBinariesMatch(t *testing.T) {
	paths := config.DefaultPaths(t.TempDir())
	dir := paths.Binaries(platform.Windows)
	fill(t, dir, Expected(paths, platform.Windows))
	fill(t, dir, []string{".aurdeps.lock"})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))

	report, err := Binaries(copier.RealSystem{}, paths, platform.Windows)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.Diff)
	assert.Equal(t, report.Expected, report.Actual)
}

func TestBinariesReportsMissingAndUnexpected(t *testing.T) {
	paths := config.DefaultPaths(t.TempDir())
	dir := paths.Binaries(platform.Windows)
	expected := Expected(paths, platform.Windows)
	fill(t, dir, expected[1:])
	fill(t, dir, []string{"stale.dll"})

	report, err := Binaries(copier.RealSystem{}, paths, platform.Windows)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, []string{expected[0]}, report.Missing)
	assert.Equal(t, []string{"stale.dll"}, report.Unexpected)
	assert.Contains(t, report.Diff, "-"+expected[0])
	assert.Contains(t, report.Diff, "+stale.dll")
	assert.Contains(t, report.Diff, "--- expected")
}

func TestBinariesMissingDirIsEmpty(t *testing.T) {
	paths := config.DefaultPaths(t.TempDir())

	report, err := Binaries(copier.RealSystem{}, paths, platform.Linux)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Empty(t, report.Actual)
	assert.Len(t, report.Missing, 20)

	android, err := Binaries(copier.RealSystem{}, paths, platform.Android)
	require.NoError(t, err)
	assert.True(t, android.OK())
}

func TestBinariesReadError(t *testing.T) {
	paths := config.DefaultPaths(t.TempDir())
	_, err := Binaries(readDirFault{err: errors.New("denied")}, paths, platform.Linux)
	require.ErrorContains(t, err, "denied")

	_, err = Binaries(readDirFault{err: fs.ErrNotExist}, paths, platform.Linux)
	require.NoError(t, err)
}

func TestBinariesWindowsIgnoresCase(t *testing.T) {
	paths := config.DefaultPaths(t.TempDir())
	dir := paths.Binaries(platform.Windows)
	var names []string
	for _, name := range Expected(paths, platform.Windows) {
		if name == "libz.dll" {
			name = "LIBZ.DLL"
		}
		names = append(names, name)
	}
	fill(t, dir, names)

	report, err := Binaries(copier.RealSystem{}, paths, platform.Windows)
	require.NoError(t, err)
	assert.True(t, report.OK(), "missing=%v unexpected=%v", report.Missing, report.Unexpected)
	assert.Empty(t, report.Diff)
}

func TestBinariesLinuxIsCaseSensitive(t *testing.T) {
	paths := config.DefaultPaths(t.TempDir())
	dir := paths.Binaries(platform.Linux)
	var names []string
	for _, name := range Expected(paths, platform.Linux) {
		if name == "libopencv_core.so" {
			name = "LIBOPENCV_CORE.SO"
		}
		names = append(names, name)
	}
	fill(t, dir, names)

	report, err := Binaries(copier.RealSystem{}, paths, platform.Linux)
	require.NoError(t, err)
	assert.Equal(t, []string{"libopencv_core.so"}, report.Missing)
	assert.Equal(t, []string{"LIBOPENCV_CORE.SO"}, report.Unexpected)
}
