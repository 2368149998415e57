// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const envTerm = "TERM"

// isTerminal reports whether f is attached to a terminal that understands
// escape sequences.
func isTerminal(f *os.File) bool {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(envTerm)), "dumb") {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// configureColor picks the lipgloss color profile. Output that is not a
// terminal gets plain ASCII so logs and pipes carry no escape codes.
func configureColor(stdout *os.File) {
	if isTerminal(stdout) {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// screenClearer returns a function that clears the screen, or nil when
// stdout is not a terminal.
func screenClearer(stdout *os.File) func() {
	if !isTerminal(stdout) {
		return nil
	}
	out := termenv.NewOutput(stdout)
	return func() {
		out.ClearScreen()
	}
}

// issueStyle is the glamour style used to render issue help.
func issueStyle(w *os.File) string {
	if !isTerminal(w) {
		return "notty"
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
