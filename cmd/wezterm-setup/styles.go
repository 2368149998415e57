// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the banner and status lines.
// The values mirror the classic 16-color ANSI set so the output looks the same
// on terminals without truecolor support.
const (
	// ColorInfo is cyan - used for the banner art and info glyphs.
	ColorInfo = lipgloss.Color("6")

	// ColorAccent is magenta - used for the banner tagline.
	ColorAccent = lipgloss.Color("5")

	// ColorSuccess is green - used for success glyphs.
	ColorSuccess = lipgloss.Color("2")

	// ColorWarning is yellow - used for warning glyphs.
	ColorWarning = lipgloss.Color("3")

	// ColorError is red - used for error glyphs.
	ColorError = lipgloss.Color("1")

	// ColorMuted is gray - used for dividers and the command line in dry runs.
	ColorMuted = lipgloss.Color("8")
)

var (
	// BannerArtStyle is for the ASCII-art title.
	BannerArtStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	// TaglineStyle is for the line under the title.
	TaglineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// DividerStyle is for horizontal rules.
	DividerStyle = lipgloss.NewStyle().
			Faint(true)

	// VersionStyle is for the version line.
	VersionStyle = lipgloss.NewStyle().
			Bold(true)

	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)

	// CmdStyle is for command lines shown to the user.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
