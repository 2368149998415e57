// SPDX-License-Identifier: MPL-2.0

// Package platform classifies the host operating system into the small set
// of platforms the installer scripts are written for.
//
// Detection is a pure mapping over an OS identifier. Detect accepts either a
// Go GOOS value or the "win32" spelling used by Node-based tooling, and
// anything unrecognized becomes Unknown.
package platform
