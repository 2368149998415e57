// SPDX-License-Identifier: MPL-2.0

package runtime

// Result is the outcome of one installer run.
//
// Error is set only for launcher-side failures (the interpreter could not be
// started, or the exit status could not be read). A child that ran and exited
// nonzero produces a Result with that ExitCode and a nil Error.
type Result struct {
	ExitCode ExitCode
	Error    error
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}

// Success reports whether the child ran and exited 0.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode.IsSuccess()
}
