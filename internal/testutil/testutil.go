// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// MustWriteScript writes an executable script named name into dir and
// returns its path. The test fails immediately if the write fails.
func MustWriteScript(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("failed to write script %s: %v", path, err)
	}
	return path
}

// MustMkdirAll creates a directory along with any necessary parents.
// The test fails immediately if the operation fails.
func MustMkdirAll(t testing.TB, path string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(path, perm); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// RequirePOSIXInterpreter skips the test on Windows or when interpreter is
// not on PATH. Stub scripts in this repository are POSIX shell.
func RequirePOSIXInterpreter(t testing.TB, interpreter string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts are POSIX shell")
	}
	if _, err := exec.LookPath(interpreter); err != nil {
		t.Skipf("%s not available: %v", interpreter, err)
	}
}
