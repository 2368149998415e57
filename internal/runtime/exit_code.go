// SPDX-License-Identifier: MPL-2.0

package runtime

import "strconv"

const (
	// ExitSuccess is the status of a successful run.
	ExitSuccess ExitCode = 0
	// ExitFailure is the status used for every launcher-side failure.
	ExitFailure ExitCode = 1
)

// ExitCode represents a process exit status code. POSIX hosts report 0-255;
// Windows reports the full 32-bit status (3010, 0xC000013A, ...), which is
// passed through unchanged. The zero value (0) means success.
type ExitCode int

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
