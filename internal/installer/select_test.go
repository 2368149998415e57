// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/wezterm-setup/wezterm-setup/internal/platform"
	"github.com/wezterm-setup/wezterm-setup/internal/testutil"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		platform    platform.Platform
		wantOK      bool
		interpreter string
		args        []string
		script      string
	}{
		{platform.Windows, true, "powershell.exe", []string{"-ExecutionPolicy", "Bypass", "-File"}, "install.ps1"},
		{platform.MacOS, true, "bash", nil, "install.sh"},
		{platform.Linux, true, "bash", nil, "install.sh"},
		{platform.Unknown, false, "", nil, ""},
		{platform.Platform("haiku"), false, "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			t.Parallel()

			spec, ok := Lookup(tt.platform)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.platform, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if spec.Interpreter != tt.interpreter {
				t.Errorf("Interpreter = %q, want %q", spec.Interpreter, tt.interpreter)
			}
			if !slices.Equal(spec.Args, tt.args) {
				t.Errorf("Args = %q, want %q", spec.Args, tt.args)
			}
			if spec.ScriptFile != tt.script {
				t.Errorf("ScriptFile = %q, want %q", spec.ScriptFile, tt.script)
			}
		})
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	spec, _ := Lookup(platform.Windows)
	spec.Args[0] = "-NoProfile"

	again, _ := Lookup(platform.Windows)
	if again.Args[0] != "-ExecutionPolicy" {
		t.Errorf("table mutated through Lookup result: %q", again.Args)
	}
}

func TestSelect_Unix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := testutil.MustWriteScript(t, dir, UnixScript, "exit 0\n")

	for _, p := range []platform.Platform{platform.MacOS, platform.Linux} {
		plan, err := Select(p, dir)
		if err != nil {
			t.Fatalf("Select(%q) error = %v", p, err)
		}
		if plan.Interpreter != "bash" {
			t.Errorf("Interpreter = %q, want bash", plan.Interpreter)
		}
		if !slices.Equal(plan.Args, []string{script}) {
			t.Errorf("Args = %q, want [%q]", plan.Args, script)
		}
		if plan.ScriptPath != script || plan.Kind != KindPOSIX || plan.Platform != p {
			t.Errorf("plan = %+v", plan)
		}
	}
}

func TestSelect_Windows(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := testutil.MustWriteScript(t, dir, WindowsScript, "exit 0\r\n")

	plan, err := Select(platform.Windows, dir)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	want := []string{"-ExecutionPolicy", "Bypass", "-File", script}
	if plan.Interpreter != "powershell.exe" || !slices.Equal(plan.Args, want) {
		t.Errorf("plan = %s %q, want powershell.exe %q", plan.Interpreter, plan.Args, want)
	}
	if plan.Kind != KindPowerShell {
		t.Errorf("Kind = %q, want %q", plan.Kind, KindPowerShell)
	}
}

func TestSelect_OnlyMatchingScriptCounts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MustWriteScript(t, dir, WindowsScript, "exit 0\r\n")

	_, err := Select(platform.Linux, dir)
	if !errors.Is(err, ErrMissingScript) {
		t.Fatalf("Select() error = %v, want ErrMissingScript", err)
	}
}

func TestSelect_MissingScript(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Select(platform.MacOS, dir)

	if !errors.Is(err, ErrMissingScript) {
		t.Fatalf("error = %v, want ErrMissingScript", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want wrapping fs.ErrNotExist", err)
	}
	var mse *MissingScriptError
	if !errors.As(err, &mse) {
		t.Fatalf("errors.As(*MissingScriptError) failed: %v", err)
	}
	if mse.Path != filepath.Join(dir, UnixScript) {
		t.Errorf("Path = %q, want %q", mse.Path, filepath.Join(dir, UnixScript))
	}
	if n := strings.Count(err.Error(), mse.Path); n != 1 {
		t.Errorf("Error() names the path %d times, want 1: %q", n, err.Error())
	}
}

func TestSelect_ScriptIsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(dir, UnixScript), 0o755)

	_, err := Select(platform.Linux, dir)
	if !errors.Is(err, ErrMissingScript) {
		t.Errorf("error = %v, want ErrMissingScript", err)
	}
	if !errors.Is(err, errNotRegularFile) || !strings.HasSuffix(err.Error(), ": not a regular file") {
		t.Errorf("error = %v, want not a regular file", err)
	}
}

func TestSelect_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := Select(platform.Unknown, t.TempDir())
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("error = %v, want ErrUnsupportedPlatform", err)
	}
	var upe *UnsupportedPlatformError
	if !errors.As(err, &upe) || upe.Platform != platform.Unknown {
		t.Errorf("errors.As(*UnsupportedPlatformError) failed: %v", err)
	}
}

func TestPlan_Command(t *testing.T) {
	t.Parallel()

	plan := &Plan{Interpreter: "bash", Args: []string{"/x/install.sh"}}
	cmd := plan.Command()
	cmd.Args[0] = "changed"

	if plan.Args[0] != "/x/install.sh" {
		t.Error("Command() shares Args with the plan")
	}
	if cmd.Interpreter != "bash" {
		t.Errorf("Interpreter = %q", cmd.Interpreter)
	}
}

func TestPlan_CommandLine(t *testing.T) {
	t.Parallel()

	plan := &Plan{
		Interpreter: "powershell.exe",
		Args:        []string{"-ExecutionPolicy", "Bypass", "-File", `C:\Program Files\setup\install.ps1`},
	}
	want := `powershell.exe -ExecutionPolicy Bypass -File "C:\Program Files\setup\install.ps1"`
	if got := plan.CommandLine(); got != want {
		t.Errorf("CommandLine() = %q, want %q", got, want)
	}
}
