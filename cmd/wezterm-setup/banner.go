// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"
)

const bannerArt = `
    ╦ ╦┌─┐┌─┐╔╦╗┌─┐┬─┐┌┬┐  ╦ ╦┌┬┐┬┬  ┌─┐
    ║║║├┤ ┌─┘ ║ ├┤ ├┬┘│││  ║ ║ │ ││  └─┐
    ╚╩╝└─┘└─┘ ╩ └─┘┴└─┴ ┴  ╚═╝ ┴ ┴┴─┘└─┘
    ┬ ┬┌┐┌┬┬  ┬┌─┐┬─┐┌─┐┌─┐┬    ┌─┐┌─┐┌┬┐┬ ┬┌─┐
    │ ││││└┐┌┘├┤ ├┬┘└─┐├─┤│    └─┐├┤  │ │ │├─┘
    └─┘┘└┘ └┘ └─┘┴└─└─┘┴ ┴┴─┘  └─┘└─┘ ┴ └─┘┴
  `

const (
	bannerTagline = "    One-step terminal makeover for WezTerm 🚀"
	bannerDivider = "    ────────────────────────────────────────────"
)

// renderBanner returns the banner text. It has no side effects.
func renderBanner(version string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(BannerArtStyle.Render(bannerArt))
	b.WriteString("\n")
	b.WriteString(TaglineStyle.Render(bannerTagline))
	b.WriteString("\n")
	b.WriteString(DividerStyle.Render(bannerDivider))
	b.WriteString("\n")
	b.WriteString(VersionStyle.Render(fmt.Sprintf("    Version: %s  |  Multi-Shell Support", version)))
	b.WriteString("\n\n")

	return b.String()
}
