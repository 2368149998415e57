// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/wezterm-setup/wezterm-setup/internal/platform"
	"github.com/wezterm-setup/wezterm-setup/internal/runtime"
)

// errNotRegularFile is the MissingScriptError cause for directories and devices.
var errNotRegularFile = errors.New("not a regular file")

// Plan is a resolved installer invocation.
type Plan struct {
	Platform    platform.Platform
	Interpreter string
	// Args are the interpreter flags followed by ScriptPath.
	Args       []string
	ScriptPath string
	Kind       ScriptKind
}

// Select resolves the installer for p inside dir. It fails with
// *UnsupportedPlatformError when p has no table row and with
// *MissingScriptError when the script is not a regular file on disk.
func Select(p platform.Platform, dir string) (*Plan, error) {
	spec, ok := Lookup(p)
	if !ok {
		return nil, &UnsupportedPlatformError{Platform: p}
	}

	scriptPath := filepath.Join(dir, spec.ScriptFile)
	if abs, err := filepath.Abs(scriptPath); err == nil {
		scriptPath = abs
	}

	info, err := os.Stat(scriptPath)
	if err != nil {
		return nil, &MissingScriptError{Platform: p, Path: scriptPath, Cause: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &MissingScriptError{Platform: p, Path: scriptPath, Cause: errNotRegularFile}
	}

	return &Plan{
		Platform:    p,
		Interpreter: spec.Interpreter,
		Args:        append(spec.Args, scriptPath),
		ScriptPath:  scriptPath,
		Kind:        spec.Kind,
	}, nil
}

// Command converts the plan into a runtime invocation.
func (p *Plan) Command() runtime.Command {
	return runtime.Command{
		Interpreter: p.Interpreter,
		Args:        slices.Clone(p.Args),
	}
}

// CommandLine renders the invocation for display, quoting arguments that
// contain whitespace.
func (p *Plan) CommandLine() string {
	parts := make([]string, 0, len(p.Args)+1)
	for _, a := range append([]string{p.Interpreter}, p.Args...) {
		if a == "" || strings.ContainsAny(a, " \t") {
			a = `"` + a + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
