package opencv

import (
	"io"

	"github.com/augmented-unreality/aurdeps/internal/cmake"
	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/console"
	"github.com/augmented-unreality/aurdeps/internal/copier"
)

// Engine runs OpenCV tasks against one plugin tree.
type Engine struct {
	Paths  config.Paths
	Config config.OpenCVConfig
	Sys    copier.System
	Runner cmake.Runner
	Out    *console.Printer
	// GeneratorStdout and GeneratorStderr receive the generator's own output.
	GeneratorStdout io.Writer
	GeneratorStderr io.Writer
}

// NewEngine returns an Engine using the real filesystem and process runner.
func NewEngine(paths config.Paths, cfg config.OpenCVConfig, out *console.Printer, stderr io.Writer) *Engine {
	stdout := out.Writer()
	if out.Quiet() {
		stdout = io.Discard
	}
	return &Engine{
		Paths:           paths,
		Config:          cfg,
		Sys:             copier.RealSystem{},
		Runner:          cmake.ExecRunner{},
		Out:             out,
		GeneratorStdout: stdout,
		GeneratorStderr: stderr,
	}
}
