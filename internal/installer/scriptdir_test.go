// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestScriptDir_Override(t *testing.T) {
	t.Parallel()

	got, err := ScriptDir("/opt/wezterm-setup/")
	if err != nil {
		t.Fatalf("ScriptDir() error = %v", err)
	}
	if want := filepath.Clean("/opt/wezterm-setup/"); got != want {
		t.Errorf("ScriptDir() = %q, want %q", got, want)
	}
}

func TestScriptDir_ExecutableFolder(t *testing.T) {
	// Not parallel: swaps the package-level executableFolder.
	orig := executableFolder
	t.Cleanup(func() { executableFolder = orig })

	dir := t.TempDir()
	executableFolder = func() (string, error) { return dir, nil }

	got, err := ScriptDir("")
	if err != nil {
		t.Fatalf("ScriptDir() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Errorf("ScriptDir() = %q, want %q", got, want)
	}
}

func TestScriptDir_ResolvesSymlink(t *testing.T) {
	orig := executableFolder
	t.Cleanup(func() { executableFolder = orig })

	target := t.TempDir()
	link := filepath.Join(t.TempDir(), "bin")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	executableFolder = func() (string, error) { return link, nil }

	got, err := ScriptDir("")
	if err != nil {
		t.Fatalf("ScriptDir() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(target)
	if got != want {
		t.Errorf("ScriptDir() = %q, want %q", got, want)
	}
}

func TestScriptDir_ExecutableLookupFails(t *testing.T) {
	orig := executableFolder
	t.Cleanup(func() { executableFolder = orig })

	cause := errors.New("no /proc")
	executableFolder = func() (string, error) { return "", cause }

	if _, err := ScriptDir(""); !errors.Is(err, cause) {
		t.Errorf("ScriptDir() error = %v, want wrapping %v", err, cause)
	}
}
