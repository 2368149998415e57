// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawn is the sentinel error wrapped by SpawnError.
	ErrSpawn = errors.New("failed to start interpreter")
	// ErrAbnormalExit is returned when the child ended without an exit status,
	// for example because it was killed by a signal.
	ErrAbnormalExit = errors.New("installer terminated abnormally")
)

// SpawnError is returned when the interpreter process could not be started,
// typically because it is not on PATH or is not executable.
type SpawnError struct {
	Interpreter string
	Cause       error
}

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrSpawn, e.Interpreter, e.Cause)
}

// Unwrap returns both ErrSpawn and the underlying cause so errors.Is matches
// either (e.g. exec.ErrNotFound).
func (e *SpawnError) Unwrap() []error { return []error{ErrSpawn, e.Cause} }
