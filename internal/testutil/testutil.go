package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubCountingFailures writes a stub that fails its first failures invocations and
// succeeds afterwards. Every invocation appends one line to a log next to the stub:
// the working directory followed by each argument wrapped in brackets.
// Read the log with StubInvocations.
func WriteStubCountingFailures(t *testing.T, dir string, name string, failures int) {
	t.Helper()
	path := filepath.Join(dir, name)
	logPath := stubLogPath(dir, name)
	script := `#!/bin/sh
log='%s'
printf '%%s' "$(pwd)" >> "$log"
for arg in "$@"; do printf ' [%%s]' "$arg" >> "$log"; done
printf '\n' >> "$log"
count=$(( $(wc -l < "$log") ))
if [ "$count" -le %d ]; then
  echo "stub failure $count" >&2
  exit 1
fi
echo "stub success"
exit 0
`
	content := []byte(fmt.Sprintf(script, logPath, failures))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// StubInvocations returns the invocation log written by a WriteStubCountingFailures stub.
// A stub that never ran yields no lines.
func StubInvocations(t *testing.T, dir string, name string) []string {
	t.Helper()
	data, err := os.ReadFile(stubLogPath(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read stub log: %v", err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func stubLogPath(dir string, name string) string {
	return filepath.Join(dir, name+".invocations")
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
