// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"io"
	"os/exec"
	"testing"
)

func TestExtractExitCode_Success(t *testing.T) {
	t.Parallel()

	result := extractExitCode(nil)
	if !result.Success() {
		t.Errorf("extractExitCode(nil) = %+v, want success", result)
	}
}

func TestExtractExitCode_WideStatus(t *testing.T) {
	// Not parallel: swaps the package-level exitStatus function.
	original := exitStatus
	t.Cleanup(func() { exitStatus = original })

	// Windows installers report statuses POSIX would truncate, e.g. 3010
	// (success, reboot required).
	for _, code := range []int{255, 256, 3010, 1 << 16} {
		exitStatus = func(*exec.ExitError) int { return code }

		result := extractExitCode(&exec.ExitError{})
		if result.Error != nil {
			t.Errorf("status %d: error = %v, want none", code, result.Error)
		}
		if result.ExitCode != ExitCode(code) {
			t.Errorf("status %d: exit code = %d", code, result.ExitCode)
		}
	}
}

func TestExtractExitCode_WaitFailure(t *testing.T) {
	t.Parallel()

	result := extractExitCode(io.ErrClosedPipe)
	if result.ExitCode != ExitFailure {
		t.Errorf("exit code = %d, want 1", result.ExitCode)
	}
	if !errors.Is(result.Error, io.ErrClosedPipe) {
		t.Errorf("error = %v, want wrapping io.ErrClosedPipe", result.Error)
	}
}
