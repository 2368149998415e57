// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wezterm-setup/wezterm-setup/internal/config"
	"github.com/wezterm-setup/wezterm-setup/internal/issue"
	"github.com/wezterm-setup/wezterm-setup/internal/platform"
	"github.com/wezterm-setup/wezterm-setup/internal/runtime"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// cfgFile allows specifying a custom config file
	cfgFile string
	// noBanner suppresses the banner regardless of configuration
	noBanner bool
	// dryRun prints the installer command instead of running it
	dryRun bool

	rootCmd = newRootCommand()
)

func newRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "wezterm-setup",
		Short: "Set up WezTerm and your shell in one step",
		Long: TaglineStyle.Render("wezterm-setup") + `

Detects your operating system and runs the matching installer script:

  Linux, macOS   bash install.sh
  Windows        powershell.exe -ExecutionPolicy Bypass -File install.ps1

The scripts are looked up next to the wezterm-setup executable unless
--script-dir (or WEZTERM_SETUP_SCRIPT_DIR) says otherwise. The exit status
is the installer's own exit status.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSetup,
	}

	c.Flags().BoolP("verbose", "v", false, "enable debug logging and detailed error help")
	c.Flags().String("script-dir", "", "directory holding install.sh and install.ps1")
	c.Flags().StringVar(&cfgFile, "config", "", "config file (default is <user config dir>/wezterm-setup/config.cue)")
	c.Flags().BoolVar(&noBanner, "no-banner", false, "do not print the banner")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "print the installer command without running it")

	return c
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and exits with the launcher status.
// This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// handleError prints errors that the launcher has not already reported,
// such as flag parsing failures.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// exitCodeFor maps a command error to the process exit status.
func exitCodeFor(err error) int {
	if err == nil {
		return int(runtime.ExitSuccess)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return int(exitErr.Code)
	}
	return int(runtime.ExitFailure)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	stdout, stderr := os.Stdout, os.Stderr
	configureColor(stdout)

	logger := log.NewWithOptions(stderr, log.Options{Prefix: config.AppName})

	cfg, cfgErr := config.NewProvider().Load(cmd.Context(), config.LoadOptions{
		ConfigFilePath: cfgFile,
		Flags:          cmd.Flags(),
	})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if noBanner {
		cfg.Banner = false
	}

	l := &launcher{
		cfg:         cfg,
		version:     Version,
		detectHost:  platform.DetectHost,
		dryRun:      dryRun,
		cfgErr:      cfgErr,
		status:      statusPrinter{out: stdout, errOut: errorWriter(cfg.ErrorStream, stdout, stderr)},
		rt:          runtime.NewNativeRuntime(runtime.DefaultIO()),
		logger:      logger,
		clearScreen: screenClearer(stdout),
		issueStyle:  func() string { return issueStyle(stderr) },
	}

	return l.run()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
