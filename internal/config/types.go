// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ErrorStreamStdout writes error lines to standard output, like informational lines.
	ErrorStreamStdout ErrorStream = "stdout"
	// ErrorStreamStderr writes error lines to standard error.
	ErrorStreamStderr ErrorStream = "stderr"
)

// ErrInvalidErrorStream is the sentinel error wrapped by InvalidErrorStreamError.
var ErrInvalidErrorStream = errors.New("invalid error stream")

type (
	// ErrorStream selects where the launcher writes its error lines.
	ErrorStream string

	// InvalidErrorStreamError is returned when an ErrorStream value is not recognized.
	InvalidErrorStreamError struct {
		Value ErrorStream
	}

	// Config is the launcher configuration.
	Config struct {
		// ScriptDir overrides the directory holding the installer scripts.
		// Empty means the directory of the launcher executable.
		ScriptDir string `json:"script_dir" mapstructure:"script_dir"`
		// Verbose enables debug logging and issue help on failure.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Banner prints the title banner before anything else.
		Banner bool `json:"banner" mapstructure:"banner"`
		// Preflight parses POSIX installer scripts before running them.
		Preflight bool `json:"preflight" mapstructure:"preflight"`
		// ErrorStream is where error lines go.
		ErrorStream ErrorStream `json:"error_stream" mapstructure:"error_stream"`
	}
)

// Error implements the error interface.
func (e *InvalidErrorStreamError) Error() string {
	return fmt.Sprintf("invalid error stream %q (valid: stdout, stderr)", string(e.Value))
}

// Unwrap returns ErrInvalidErrorStream.
func (e *InvalidErrorStreamError) Unwrap() error { return ErrInvalidErrorStream }

// Validate returns an error if s is not stdout or stderr.
func (s ErrorStream) Validate() error {
	switch s {
	case ErrorStreamStdout, ErrorStreamStderr:
		return nil
	default:
		return &InvalidErrorStreamError{Value: s}
	}
}

// String returns the string representation of the ErrorStream.
func (s ErrorStream) String() string { return string(s) }

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Banner:      true,
		Preflight:   true,
		ErrorStream: ErrorStreamStderr,
	}
}

// Validate checks every field of the configuration.
func (c *Config) Validate() error {
	if err := c.ErrorStream.Validate(); err != nil {
		return fmt.Errorf("error_stream: %w", err)
	}
	return nil
}
