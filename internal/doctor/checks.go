package doctor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/copier"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/platform"
	"github.com/augmented-unreality/aurdeps/internal/verify"
)

var (
	lookPath   = exec.LookPath
	loadConfig = config.Load
)

// CheckConfig loads the optional config file. On failure the defaults are returned
// so the remaining checks still run.
func CheckConfig(path string) (Result, config.Config) {
	cfg, err := loadConfig(path)
	if err != nil {
		recommend := messages.DoctorConfigLoadRecommend
		if errors.Is(err, config.ErrConfigValidation) {
			recommend = messages.DoctorConfigValidationRecommend
		}
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: recommend,
		}, config.Default()
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   fmt.Sprintf(messages.DoctorConfigDefaultsFmt, path),
		}, cfg
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
	}, cfg
}

// CheckGenerator verifies the build files generator can be found.
func CheckGenerator(cfg config.OpenCVConfig) Result {
	resolved, err := lookPath(cfg.CMake)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameCMake,
			Message:        fmt.Sprintf(messages.DoctorCMakeMissingFmt, cfg.CMake),
			Recommendation: messages.DoctorCMakeMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCMake,
		Message:   fmt.Sprintf(messages.DoctorCMakeFoundFmt, resolved),
	}
}

// CheckSources verifies the OpenCV source checkout exists.
func CheckSources(paths config.Paths) Result {
	info, err := os.Stat(paths.OpenCVSource)
	if err != nil || !info.IsDir() {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSources,
			Message:        fmt.Sprintf(messages.DoctorSourcesMissingFmt, relPath(paths.Root, paths.OpenCVSource)),
			Recommendation: messages.DoctorSourcesMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameSources,
		Message:   fmt.Sprintf(messages.DoctorSourcesFoundFmt, relPath(paths.Root, paths.OpenCVSource)),
	}
}

// CheckCacheSettings verifies a predefined cache file exists for each buildable
// platform. Only the host platform's file is required.
func CheckCacheSettings(paths config.Paths, host platform.Platform) []Result {
	var results []Result
	for _, target := range platform.BuildSet {
		path := paths.CacheSettings(target)
		rel := relPath(paths.Root, path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameCache,
				Message:   fmt.Sprintf(messages.DoctorCacheFoundFmt, rel),
			})
			continue
		}
		status := StatusWarn
		if target == host {
			status = StatusFail
		}
		results = append(results, Result{
			Status:         status,
			CheckName:      messages.DoctorCheckNameCache,
			Message:        fmt.Sprintf(messages.DoctorCacheMissingFmt, rel),
			Recommendation: fmt.Sprintf(messages.DoctorCacheMissingRecommendFmt, target),
		})
	}
	return results
}

// CheckGStreamer looks for the runtime DLL directory. GStreamer is optional.
func CheckGStreamer(root string) Result {
	bin := filepath.Join(root, "bin")
	if info, err := os.Stat(bin); err == nil && info.IsDir() {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameGStreamer,
			Message:   fmt.Sprintf(messages.DoctorGStreamerFoundFmt, bin),
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNameGStreamer,
		Message:        fmt.Sprintf(messages.DoctorGStreamerMissingFmt, bin),
		Recommendation: fmt.Sprintf(messages.DoctorGStreamerMissingRecommendFmt, config.EnvGStreamerRoot),
	}
}

// CheckBinaries compares the installed binaries for target with the catalog.
// A mismatch is a warning because copying is a separate step.
func CheckBinaries(sys copier.System, paths config.Paths, target platform.Platform) Result {
	report, err := verify.Binaries(sys, paths, target)
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameBinaries,
			Message:   err.Error(),
		}
	}
	rel := relPath(paths.Root, report.Dir)
	if report.OK() {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameBinaries,
			Message:   fmt.Sprintf(messages.VerifyMatchFmt, rel, len(report.Actual)),
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNameBinaries,
		Message:        fmt.Sprintf(messages.DoctorBinariesMismatchFmt, rel, len(report.Missing), len(report.Unexpected)),
		Recommendation: fmt.Sprintf(messages.DoctorBinariesRecommendFmt, target),
	}
}

func relPath(root string, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
