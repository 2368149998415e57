// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"testing"
)

func TestNewErrorResult(t *testing.T) {
	t.Parallel()

	testErr := errors.New("test error")
	result := NewErrorResult(ExitFailure, testErr)

	if result.ExitCode != ExitFailure {
		t.Errorf("expected ExitCode 1, got %d", result.ExitCode)
	}
	if !errors.Is(result.Error, testErr) {
		t.Errorf("expected error %v, got %v", testErr, result.Error)
	}
	if result.Success() {
		t.Error("Success() = true for error result")
	}
}

func TestNewExitCodeResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code        ExitCode
		wantSuccess bool
	}{
		{0, true},
		{2, false},
		{127, false},
	}

	for _, tt := range tests {
		result := NewExitCodeResult(tt.code)
		if result.ExitCode != tt.code {
			t.Errorf("ExitCode = %d, want %d", result.ExitCode, tt.code)
		}
		if result.Error != nil {
			t.Errorf("Error = %v, want nil", result.Error)
		}
		if result.Success() != tt.wantSuccess {
			t.Errorf("NewExitCodeResult(%d).Success() = %v, want %v", tt.code, result.Success(), tt.wantSuccess)
		}
	}
}

func TestExtractExitCode_Nil(t *testing.T) {
	t.Parallel()

	result := extractExitCode(nil)
	if !result.Success() {
		t.Errorf("extractExitCode(nil) = %+v, want success", result)
	}
}

func TestExtractExitCode_OtherError(t *testing.T) {
	t.Parallel()

	cause := errors.New("copy failed")
	result := extractExitCode(cause)
	if result.ExitCode != ExitFailure {
		t.Errorf("ExitCode = %d, want 1", result.ExitCode)
	}
	if !errors.Is(result.Error, cause) {
		t.Errorf("Error = %v, want wrapping %v", result.Error, cause)
	}
}
