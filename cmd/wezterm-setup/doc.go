// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the wezterm-setup command.
//
// The command prints a banner, classifies the host platform, and hands the
// terminal over to the matching installer script. The launcher's exit status
// is the installer's exit status, or 1 when the launcher itself fails.
package cmd
