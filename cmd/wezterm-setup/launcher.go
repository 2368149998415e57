// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wezterm-setup/wezterm-setup/internal/config"
	"github.com/wezterm-setup/wezterm-setup/internal/installer"
	"github.com/wezterm-setup/wezterm-setup/internal/issue"
	"github.com/wezterm-setup/wezterm-setup/internal/platform"
	"github.com/wezterm-setup/wezterm-setup/internal/runtime"

	"github.com/charmbracelet/log"
)

// installerRuntime starts the installer; *runtime.NativeRuntime in production.
type installerRuntime interface {
	Available(interpreter string) bool
	Start(c runtime.Command) (*runtime.Process, error)
}

// launcher runs one setup: banner, platform detection, installer hand-off.
// Every path through run ends with nil (installer exited 0, or dry run) or
// an *ExitError carrying the process status.
type launcher struct {
	cfg     *config.Config
	version string
	// detectHost classifies the machine; platform.DetectHost in production.
	detectHost func() platform.Host
	dryRun     bool
	// cfgErr is a configuration problem reported after the banner.
	cfgErr error

	status statusPrinter
	rt     installerRuntime
	logger *log.Logger

	// clearScreen runs before the banner; nil when stdout is not a terminal.
	clearScreen func()
	// issueStyle picks the glamour style for issue help. It may query the
	// terminal, so it is called only when help is shown.
	issueStyle func() string
}

func (l *launcher) run() error {
	if l.cfg.Banner {
		if l.clearScreen != nil {
			l.clearScreen()
		}
		fmt.Fprint(l.status.out, renderBanner(l.version))
	}

	if l.cfgErr != nil {
		l.status.warn("Using default configuration: %s", formatErrorForDisplay(l.cfgErr, l.cfg.Verbose))
		l.showIssue(issue.ConfigLoadFailedId)
	}

	host := l.detectHost()
	p := host.Platform
	l.logger.Debug("platform detected", "goos", host.GOOS, "platform", p)

	if !p.IsSupported() {
		l.status.error("Unsupported operating system platform: %s", host.GOOS)
		l.status.info("Supported platforms: %s", supportedList())
		l.showIssue(issue.UnsupportedPlatformId)
		return &ExitError{Code: runtime.ExitFailure, Err: &installer.UnsupportedPlatformError{Platform: p}}
	}

	dir, err := installer.ScriptDir(l.cfg.ScriptDir)
	if err != nil {
		return l.fail(issue.MissingScriptId, issue.NewErrorContext().
			WithOperation("locate installer scripts").
			WithSuggestion("Pass --script-dir to point at the directory holding the scripts").
			Wrap(err).
			Build())
	}
	l.logger.Debug("script directory resolved", "dir", dir, "override", l.cfg.ScriptDir != "")

	plan, err := installer.Select(p, dir)
	if err != nil {
		return l.fail(issue.MissingScriptId, l.selectError(p, err))
	}
	l.logger.Debug("installer selected", "interpreter", plan.Interpreter, "args", plan.Args)

	if l.cfg.Preflight {
		if err := installer.Preflight(plan); err != nil {
			l.status.warn("%v", err)
		} else {
			l.logger.Debug("preflight passed", "script", plan.ScriptPath, "kind", plan.Kind)
		}
	}

	l.status.info("Detected platform: %s", p)
	l.status.info("Running installer: %s", plan.ScriptPath)
	l.status.blank()

	if l.dryRun {
		fmt.Fprintln(l.status.out, CmdStyle.Render(plan.CommandLine()))
		if !l.rt.Available(plan.Interpreter) {
			l.status.warn("%s was not found on PATH; a real run would fail to start", plan.Interpreter)
		}
		return nil
	}

	return l.delegate(plan)
}

// delegate starts the installer and waits for its exit notification.
func (l *launcher) delegate(plan *installer.Plan) error {
	proc, err := l.rt.Start(plan.Command())
	if err != nil {
		l.status.blank()
		return l.fail(issue.InterpreterNotFoundId, issue.NewErrorContext().
			WithOperation("run installer").
			WithResource(plan.Interpreter).
			WithSuggestion(fmt.Sprintf("Make sure %s is installed and on your PATH", plan.Interpreter)).
			Wrap(err).
			Build())
	}
	l.logger.Debug("installer started", "pid", proc.Pid)

	result := <-proc.Done()
	l.logger.Debug("installer exited", "code", result.ExitCode, "error", result.Error)

	if result.Error != nil {
		l.status.blank()
		return l.fail(issue.InstallerFailedId, issue.WrapWithContext(result.Error, "run installer", plan.ScriptPath))
	}

	if !result.ExitCode.IsSuccess() {
		l.showIssue(issue.InstallerFailedId)
		return &ExitError{Code: result.ExitCode}
	}

	l.status.success("Installer finished")
	return nil
}

// selectError turns an installer.Select failure into a user-facing error.
func (l *launcher) selectError(p platform.Platform, err error) *issue.ActionableError {
	var missing *installer.MissingScriptError
	if errors.As(err, &missing) {
		return issue.NewErrorContext().
			WithOperation(fmt.Sprintf("find %s installer script", p.DisplayName())).
			WithSuggestion("Reinstall the package so the installer scripts are restored").
			WithSuggestion(fmt.Sprintf("Pass --script-dir or set %s_SCRIPT_DIR", config.EnvPrefix)).
			Wrap(err).
			Build()
	}
	return issue.WrapWithContext(err, "select installer", string(p))
}

// fail reports ae, shows the catalog entry in verbose mode, and returns the
// launcher failure status.
func (l *launcher) fail(id issue.Id, ae *issue.ActionableError) error {
	l.status.error("%s", ae.Format(l.cfg.Verbose))
	l.showIssue(id)
	return &ExitError{Code: runtime.ExitFailure, Err: ae}
}

// showIssue renders the issue catalog entry to the error stream in verbose mode.
func (l *launcher) showIssue(id issue.Id) {
	if !l.cfg.Verbose {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(l.issueStyle())
	if err != nil {
		l.logger.Warn("failed to render issue help", "issue", id, "error", err)
		return
	}
	fmt.Fprint(l.status.errOut, rendered)
}

func supportedList() string {
	names := make([]string, 0, len(platform.Supported()))
	for _, p := range platform.Supported() {
		names = append(names, p.DisplayName())
	}
	return strings.Join(names, ", ")
}

// errorWriter picks the writer for error lines.
func errorWriter(stream config.ErrorStream, stdout, stderr io.Writer) io.Writer {
	if stream == config.ErrorStreamStdout {
		return stdout
	}
	return stderr
}
