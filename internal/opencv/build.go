package opencv

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/augmented-unreality/aurdeps/internal/cmake"
	"github.com/augmented-unreality/aurdeps/internal/copier"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

// BuildResult reports how the generator run ended.
type BuildResult struct {
	// Generated is false when the generator failed on every attempt.
	Generated bool
	Attempts  int
}

// Build creates buildDir and generates OpenCV build files into it for target.
// A generator that fails on every attempt is reported on the console but is not
// an error; only filesystem failures and cancellation are.
func (e *Engine) Build(ctx context.Context, target platform.Platform, buildDir string) (BuildResult, error) {
	install := e.Paths.InstallDir(target)
	e.Out.Task("build")
	e.Out.Field("platform", target.String())
	e.Out.Field("build directory", buildDir)
	e.Out.Field("install directory", install)

	if err := copier.EnsureDir(e.Sys, buildDir); err != nil {
		return BuildResult{}, err
	}

	opts := cmake.ConfigureOptions{
		Executable:    e.Config.CMake,
		CacheFile:     e.Paths.CacheSettings(target),
		InstallPrefix: install,
		SourceDir:     e.Paths.OpenCVSource,
		BuildDir:      buildDir,
	}
	if target == platform.Windows {
		opts.Generator = e.Config.WindowsGenerator
	}
	inv := cmake.Configure(opts, e.GeneratorStdout, e.GeneratorStderr)

	e.Out.Info(messages.OpenCVRunningFmt, color.GreenString("CMake"))
	e.Out.Field("command", inv.String())
	if target == platform.Windows {
		e.Out.Info(messages.OpenCVGStreamerHintInstallFmt, color.CyanString("GStreamer"))
		e.Out.Info(messages.OpenCVGStreamerHintEnvFmt, color.RedString("GSTREAMER_DIR"), color.YellowString("(gstreamer_install_dir)/1.0/x86_64"))
	}
	e.Out.Banner(true)

	attempts, err := cmake.RunWithRetry(ctx, e.Runner, inv, func(error) {
		e.Out.Warn(messages.OpenCVRetrying)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return BuildResult{Attempts: attempts}, fmt.Errorf(messages.OpenCVBuildCancelledFmt, ctxErr)
		}
		e.Out.Banner(false)
		e.Out.Error(messages.OpenCVGeneratorFailed)
		e.Out.Error("%v", err)
		return BuildResult{Attempts: attempts}, nil
	}

	e.Out.Banner(true)
	e.Out.Success(messages.OpenCVGenerated)
	e.Out.Info(messages.OpenCVContinueFmt, color.YellowString(buildDir))
	switch target {
	case platform.Windows:
		e.Out.Hint(messages.OpenCVHintBuildWith, "Visual Studio")
	default:
		e.Out.Hint(messages.OpenCVHintRunCommand, fmt.Sprintf("make -j%d install", e.Config.MakeJobs))
	}
	return BuildResult{Generated: true, Attempts: attempts}, nil
}
