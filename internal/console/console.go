// Package console renders the colored task output shared by every aurdeps command.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/terminal"
)

var isInteractive = terminal.IsInteractive

const bannerWidth = 80

// Printer writes task progress to out. In quiet mode only warnings and errors are written.
type Printer struct {
	out   io.Writer
	quiet bool
}

// New returns a Printer writing to out.
func New(out io.Writer, quiet bool) *Printer {
	if out == nil {
		out = io.Discard
	}
	return &Printer{out: out, quiet: quiet}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Quiet reports whether informational output is suppressed.
func (p *Printer) Quiet() bool {
	return p.quiet
}

// Task announces the start of a task.
func (p *Printer) Task(name string) {
	p.infof(messages.ConsoleTaskFmt, color.MagentaString(name))
}

// Field prints one "- label: value" detail line under a task.
func (p *Printer) Field(label string, value string) {
	p.infof(messages.ConsoleFieldFmt, label, color.CyanString(value))
}

// Section prints a section divider such as "-- Libs --".
func (p *Printer) Section(title string) {
	p.infof(messages.ConsoleSectionFmt, title)
}

// Copy reports a single copy operation.
func (p *Printer) Copy(src string, dst string) {
	p.infof(messages.ConsoleCopyFmt, color.YellowString(src), color.CyanString(dst))
}

// Hint prints an indented next-step line with command highlighted.
func (p *Printer) Hint(text string, command string) {
	p.infof(messages.ConsoleHintFmt, text, color.GreenString(command))
}

// Info prints a plain informational line.
func (p *Printer) Info(format string, args ...any) {
	p.infof(format+"\n", args...)
}

// Success prints a green informational line.
func (p *Printer) Success(format string, args ...any) {
	p.infof("%s\n", color.GreenString(format, args...))
}

// Warn prints a yellow line even in quiet mode.
func (p *Printer) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, color.YellowString(format, args...))
}

// Error prints a red line even in quiet mode.
func (p *Printer) Error(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, color.RedString(format, args...))
}

// Banner prints a full-width colored bar: green when ok, red otherwise.
// The failure banner is printed in quiet mode too.
func (p *Printer) Banner(ok bool) {
	bar := strings.Repeat(" ", bannerWidth)
	if ok {
		p.infof("%s\n", color.New(color.BgGreen).Sprint(bar))
		return
	}
	_, _ = fmt.Fprintln(p.out, color.New(color.BgRed).Sprint(bar))
}

// Progress returns a progress bar over total steps. The bar is only drawn on an
// interactive terminal outside quiet mode; otherwise it is invisible.
func (p *Printer) Progress(total int, description string) *progressbar.ProgressBar {
	visible := !p.quiet && isInteractive()
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *Printer) infof(format string, args ...any) {
	if p.quiet {
		return
	}
	_, _ = fmt.Fprintf(p.out, format, args...)
}
