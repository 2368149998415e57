// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	UnsupportedPlatformId Id = iota + 1
	MissingScriptId
	InterpreterNotFoundId
	InstallerFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // upstream documentation listed under "See also"
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue Markdown with the given glamour style ("dark",
// "light", "notty", or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also:\n")
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	unsupportedPlatformIssue = &Issue{
		id: UnsupportedPlatformId,
		mdMsg: `
# Unsupported platform!

The installer scripts only exist for Windows, macOS and Linux.

## Things you can try:
- Run the setup from one of the supported operating systems
- On BSD systems, run 'install.sh' by hand; it may work with little change:
~~~
$ bash install.sh
~~~`,
		extLinks: []HttpLink{
			"https://wezterm.org/installation.html",
		},
	}

	missingScriptIssue = &Issue{
		id: MissingScriptId,
		mdMsg: `
# Installer script not found!

The launcher expects 'install.sh' (macOS, Linux) or 'install.ps1' (Windows)
next to its own executable.

## Things you can try:
- Reinstall the package so the scripts are shipped again
- Point the launcher at the directory holding the scripts:
~~~
$ wezterm-setup --script-dir /path/to/scripts
~~~
- Or set it through the environment:
~~~
$ export WEZTERM_SETUP_SCRIPT_DIR=/path/to/scripts
~~~`,
	}

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# Interpreter could not be started!

The shell that runs the installer script was not found or could not be executed.

## Interpreters used:
- Linux/macOS: bash
- Windows: powershell.exe

## Things you can try:
- Install bash and make sure it is on your PATH
- On Windows, check that Windows PowerShell is enabled
- Run with verbose mode for more details:
~~~
$ wezterm-setup --verbose
~~~`,
		extLinks: []HttpLink{
			"https://learn.microsoft.com/powershell/scripting/install/installing-powershell",
			"https://www.gnu.org/software/bash/",
		},
	}

	installerFailedIssue = &Issue{
		id: InstallerFailedId,
		mdMsg: `
# Installer exited with an error!

The launcher started the installer script, which then exited with a non-zero status.
The launcher exits with the same status.

## Things you can try:
- Read the installer output above for the failing step
- Run the script directly to reproduce the failure:
~~~
$ bash install.sh
~~~`,
		extLinks: []HttpLink{
			"https://learn.microsoft.com/powershell/module/microsoft.powershell.core/about/about_execution_policies",
		},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.
Built-in defaults were used instead.

## Configuration locations:
- Linux: '$XDG_CONFIG_HOME/wezterm-setup/config.cue'
- macOS: '~/Library/Application Support/wezterm-setup/config.cue'
- Windows: '%APPDATA%\wezterm-setup\config.cue'

## Example:
~~~cue
script_dir: "/opt/wezterm-setup"
banner:     true
preflight:  true
error_stream: "stderr"
~~~`,
		extLinks: []HttpLink{
			"https://cuelang.org/docs/",
		},
	}

	issues = map[Id]*Issue{
		unsupportedPlatformIssue.Id(): unsupportedPlatformIssue,
		missingScriptIssue.Id():       missingScriptIssue,
		interpreterNotFoundIssue.Id(): interpreterNotFoundIssue,
		installerFailedIssue.Id():     installerFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
