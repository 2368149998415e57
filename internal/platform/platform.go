// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS identifier constants for runtime.GOOS comparisons.
const (
	GOOSWindows = "windows"
	GOOSDarwin  = "darwin"
	GOOSLinux   = "linux"

	// goosWin32 is the Node.js spelling of the Windows identifier.
	goosWin32 = "win32"
)

const (
	// Unknown is any host the installer scripts do not support.
	Unknown Platform = "unknown"
	// Windows runs the PowerShell installer.
	Windows Platform = "windows"
	// MacOS runs the POSIX shell installer.
	MacOS Platform = "macos"
	// Linux runs the POSIX shell installer.
	Linux Platform = "linux"
)

// Platform is the host classification used to pick an installer script.
// The zero value is not valid; use Unknown for unsupported hosts.
type Platform string

// Host is the running machine: its raw OS identifier and classification.
type Host struct {
	GOOS     string
	Platform Platform
}

// Detect maps an OS identifier to a Platform.
func Detect(goos string) Platform {
	switch goos {
	case GOOSWindows, goosWin32:
		return Windows
	case GOOSDarwin:
		return MacOS
	case GOOSLinux:
		return Linux
	default:
		return Unknown
	}
}

// HostFor classifies goos as if it were the running machine.
func HostFor(goos string) Host {
	return Host{GOOS: goos, Platform: Detect(goos)}
}

// DetectHost classifies the running process.
func DetectHost() Host {
	return HostFor(runtime.GOOS)
}

// Supported returns the platforms that have an installer script, in display order.
func Supported() []Platform {
	return []Platform{Windows, MacOS, Linux}
}

// IsSupported reports whether p has an installer script.
func (p Platform) IsSupported() bool {
	switch p {
	case Windows, MacOS, Linux:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-facing product name of the platform.
func (p Platform) DisplayName() string {
	switch p {
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return "Unknown"
	}
}

// String returns the lowercase identifier.
func (p Platform) String() string { return string(p) }
