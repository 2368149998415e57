// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/wezterm-setup/wezterm-setup/cmd/wezterm-setup"

func main() {
	cmd.Execute()
}
