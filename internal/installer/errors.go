// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/wezterm-setup/wezterm-setup/internal/platform"
)

var (
	// ErrUnsupportedPlatform is the sentinel error wrapped by UnsupportedPlatformError.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrMissingScript is the sentinel error wrapped by MissingScriptError.
	ErrMissingScript = errors.New("installer script not found")
)

type (
	// UnsupportedPlatformError is returned for a platform with no installer.
	UnsupportedPlatformError struct {
		Platform platform.Platform
	}

	// MissingScriptError is returned when the resolved script is absent or is
	// not a regular file.
	MissingScriptError struct {
		Platform platform.Platform
		Path     string
		Cause    error
	}
)

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedPlatform, e.Platform)
}

// Unwrap returns ErrUnsupportedPlatform.
func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }

// Error names the path once; a *fs.PathError cause contributes only its
// underlying reason since it would repeat the path.
func (e *MissingScriptError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrMissingScript, e.Path)
	}
	reason := e.Cause
	var pathErr *fs.PathError
	if errors.As(reason, &pathErr) {
		reason = pathErr.Err
	}
	return fmt.Sprintf("%s: %s: %v", ErrMissingScript, e.Path, reason)
}

// Unwrap returns ErrMissingScript and the stat error, if any.
func (e *MissingScriptError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrMissingScript, e.Cause}
	}
	return []error{ErrMissingScript}
}
