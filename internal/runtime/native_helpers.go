// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"os/exec"
)

// exitStatus reads the child's status out of a Wait error.
var exitStatus = (*exec.ExitError).ExitCode

// extractExitCode turns the error from exec.Cmd.Wait into a Result. Every
// non-negative status is the installer's own and is kept verbatim.
func extractExitCode(err error) *Result {
	if err == nil {
		return NewExitCodeResult(ExitSuccess)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 means the process did not exit normally (signal, or Wait raced a kill).
		code := exitStatus(exitErr)
		if code < 0 {
			return NewErrorResult(ExitFailure, fmt.Errorf("%w: %s", ErrAbnormalExit, exitErr.ProcessState))
		}
		return NewExitCodeResult(ExitCode(code))
	}

	// I/O copy failures and the like, after a successful start.
	return NewErrorResult(ExitFailure, fmt.Errorf("failed to wait for installer: %w", err))
}
