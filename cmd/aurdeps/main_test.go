package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"aurdeps", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainHelpWithoutArgs(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"aurdeps"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), "opencv") {
		t.Fatalf("expected help output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"aurdeps", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"aurdeps", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"aurdeps", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"aurdeps"}, &out, &out, func(exitCode int) { code = exitCode })
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	orig := executeFunc
	defer func() { executeFunc = orig }()

	called := false
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		called = true
		return nil
	}
	os.Args = []string{"aurdeps", "--version"}
	main()
	if !called {
		t.Fatalf("expected execute to be called")
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origBuild })

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	if got := versionString(); got != "v1.2.3" {
		t.Fatalf("unexpected version %q", got)
	}
	Commit, BuildDate = "abc123", "2026-10-01"
	if got := versionString(); got != "v1.2.3 (commit abc123, built 2026-10-01)" {
		t.Fatalf("unexpected version %q", got)
	}
}

func TestSilentExitErrorMessage(t *testing.T) {
	err := error(&SilentExitError{Code: 2})
	var silent *SilentExitError
	if !errors.As(err, &silent) || silent.Error() != "exit 2" {
		t.Fatalf("unexpected %v", err)
	}
}
