// Package cmake drives the external build files generator.
package cmake

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// MaxAttempts is how many times a failing generator run is tried in total.
const MaxAttempts = 2

// Invocation is a single generator process.
type Invocation struct {
	Executable string
	Args       []string
	// Dir is the child's working directory. The aurdeps process itself never changes directory.
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for display.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, quote(i.Executable))
	for _, arg := range i.Args {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// Runner starts an invocation and waits for it.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExecRunner runs invocations as child processes.
type ExecRunner struct{}

// Run starts the process and waits for it. A process that cannot be started and
// a non-zero exit are both reported as errors.
func (ExecRunner) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Executable, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf(messages.CMakeRunFailedFmt, inv.Executable, err)
	}
	return nil
}

// ConfigureOptions describes a configure step that loads a predefined cache.
type ConfigureOptions struct {
	Executable    string
	Generator     string
	CacheFile     string
	InstallPrefix string
	SourceDir     string
	BuildDir      string
}

// ConfigureArgs returns the generator arguments for opts. Generator is only
// passed when set.
func ConfigureArgs(opts ConfigureOptions) []string {
	var args []string
	if opts.Generator != "" {
		args = append(args, "-G", opts.Generator)
	}
	return append(args,
		"-C", opts.CacheFile,
		"-DCMAKE_INSTALL_PREFIX="+opts.InstallPrefix,
		opts.SourceDir,
	)
}

// Configure builds the invocation for opts, streaming output to stdout and stderr.
func Configure(opts ConfigureOptions, stdout io.Writer, stderr io.Writer) Invocation {
	return Invocation{
		Executable: opts.Executable,
		Args:       ConfigureArgs(opts),
		Dir:        opts.BuildDir,
		Stdout:     stdout,
		Stderr:     stderr,
	}
}

// RunWithRetry runs inv up to MaxAttempts times and stops at the first success.
// onRetry, when set, is called with the failure before each repeat. It returns the
// number of attempts made and the last error. A cancelled context is not retried.
func RunWithRetry(ctx context.Context, runner Runner, inv Invocation, onRetry func(err error)) (int, error) {
	var err error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		err = runner.Run(ctx, inv)
		if err == nil {
			return attempt, nil
		}
		if ctx.Err() != nil || attempt == MaxAttempts {
			return attempt, err
		}
		if onRetry != nil {
			onRetry(err)
		}
	}
	return MaxAttempts, err
}
