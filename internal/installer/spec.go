// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"slices"

	"github.com/wezterm-setup/wezterm-setup/internal/platform"
)

const (
	// UnixScript is the installer for macOS and Linux.
	UnixScript = "install.sh"
	// WindowsScript is the installer for Windows.
	WindowsScript = "install.ps1"
)

// ScriptKind tells how an installer script is interpreted.
type ScriptKind string

const (
	// KindPOSIX scripts run under bash.
	KindPOSIX ScriptKind = "posix"
	// KindPowerShell scripts run under Windows PowerShell.
	KindPowerShell ScriptKind = "powershell"
)

// Spec is one row of the installer table.
type Spec struct {
	// Interpreter is the executable, resolved through PATH.
	Interpreter string
	// Args precede the script path on the command line.
	Args []string
	// ScriptFile is the script's base name inside the script directory.
	ScriptFile string
	// Kind is how ScriptFile is interpreted.
	Kind ScriptKind
}

var specs = map[platform.Platform]Spec{
	platform.Windows: {
		Interpreter: "powershell.exe",
		Args:        []string{"-ExecutionPolicy", "Bypass", "-File"},
		ScriptFile:  WindowsScript,
		Kind:        KindPowerShell,
	},
	platform.MacOS: {
		Interpreter: "bash",
		ScriptFile:  UnixScript,
		Kind:        KindPOSIX,
	},
	platform.Linux: {
		Interpreter: "bash",
		ScriptFile:  UnixScript,
		Kind:        KindPOSIX,
	},
}

// Lookup returns the table row for p. ok is false for Unknown and any
// undeclared platform.
func Lookup(p platform.Platform) (Spec, bool) {
	s, ok := specs[p]
	if !ok {
		return Spec{}, false
	}
	s.Args = slices.Clone(s.Args)
	return s, true
}
