// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"io"
	"os"
	"os/exec"
)

type (
	// IOContext holds the streams handed to the child.
	IOContext struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Command is an interpreter invocation.
	Command struct {
		// Interpreter is the executable name or path, resolved through PATH.
		Interpreter string
		// Args are passed to the interpreter verbatim; no shell is involved.
		Args []string
	}

	// Process is a started child. Done delivers exactly one Result.
	Process struct {
		Pid  int
		done chan *Result
	}

	// NativeRuntime starts interpreters as host processes.
	NativeRuntime struct {
		IO IOContext
	}
)

// DefaultIO returns the parent's own standard streams.
func DefaultIO() IOContext {
	return IOContext{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// NewNativeRuntime creates a runtime bound to the given streams.
func NewNativeRuntime(stdio IOContext) *NativeRuntime {
	return &NativeRuntime{IO: stdio}
}

// Available reports whether the interpreter can be found on PATH.
func (r *NativeRuntime) Available(interpreter string) bool {
	_, err := exec.LookPath(interpreter)
	return err == nil
}

// Start launches the command in the parent's working directory and returns
// immediately. Exit is reported asynchronously on the returned Process. A
// start failure is returned as a *SpawnError and no Process is created.
func (r *NativeRuntime) Start(c Command) (*Process, error) {
	// exec.Command, not CommandContext: the child is never cancelled by the parent.
	cmd := exec.Command(c.Interpreter, c.Args...)
	cmd.Stdin = r.IO.Stdin
	cmd.Stdout = r.IO.Stdout
	cmd.Stderr = r.IO.Stderr

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Interpreter: c.Interpreter, Cause: err}
	}

	p := &Process{
		Pid:  cmd.Process.Pid,
		done: make(chan *Result, 1),
	}
	go func() {
		p.done <- extractExitCode(cmd.Wait())
		close(p.done)
	}()

	return p, nil
}

// Execute starts the command and blocks until it exits.
func (r *NativeRuntime) Execute(c Command) *Result {
	p, err := r.Start(c)
	if err != nil {
		return NewErrorResult(ExitFailure, err)
	}
	return p.Wait()
}

// Done returns the channel that receives the Result when the child exits.
func (p *Process) Done() <-chan *Result {
	return p.done
}

// Wait blocks until the child exits.
func (p *Process) Wait() *Result {
	return <-p.done
}
