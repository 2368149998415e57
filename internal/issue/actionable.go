// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"slices"
	"strings"
)

// maxChainDepth bounds the verbose error-chain walk.
const maxChainDepth = 16

type (
	// ActionableError is a user-facing failure: what the launcher was doing,
	// what it was doing it to, and what the user can try next.
	//
	//	ae := issue.NewErrorContext().
	//		WithOperation("run installer").
	//		WithResource("bash").
	//		WithSuggestion("Make sure bash is installed and on your PATH").
	//		Wrap(err).
	//		Build()
	ActionableError struct {
		// Operation is a verb phrase completing "failed to ...".
		Operation string
		// Resource is the path or executable involved; optional.
		Resource    string
		Suggestions []string
		Cause       error
	}

	// ErrorContext accumulates the fields of an ActionableError.
	ErrorContext struct {
		ae ActionableError
	}

	// chainLink is one error in a flattened error tree.
	chainLink struct {
		depth int
		err   error
	}
)

// NewErrorContext starts an empty ActionableError builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithContext attaches an operation and resource to err. It returns nil
// for a nil err.
func WrapWithContext(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the message and a bullet per suggestion. Verbose output
// adds every error below Cause, including the branches of errors that
// unwrap to several causes:
//
//	failed to run installer: bash: failed to start interpreter "bash": ...
//
//	  • Make sure bash is installed and on your PATH
//
//	Error chain:
//	  1. failed to start interpreter "bash": ...
//	    2. failed to start interpreter
//	    3. exec: "bash": executable file not found in $PATH
//	      4. executable file not found in $PATH
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		b.WriteByte('\n')
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "\n  • %s", s)
		}
	}

	if !verbose || e.Cause == nil {
		return b.String()
	}

	b.WriteString("\n\nError chain:")
	for i, link := range flattenChain(e.Cause) {
		fmt.Fprintf(&b, "\n  %s%d. %s", strings.Repeat("  ", link.depth), i+1, link.err)
	}
	return b.String()
}

// flattenChain lists err and everything it wraps in depth-first order,
// following both Unwrap() error and Unwrap() []error.
func flattenChain(err error) []chainLink {
	var links []chainLink
	var walk func(err error, depth int)
	walk = func(err error, depth int) {
		if err == nil || depth >= maxChainDepth {
			return
		}
		links = append(links, chainLink{depth: depth, err: err})
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner, depth+1)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap(), depth+1)
		}
	}
	walk(err, 0)
	return links
}

func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.ae.Operation = op
	return c
}

func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.ae.Resource = res
	return c
}

// WithSuggestion appends a hint; suggestions print in call order.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.ae.Suggestions = append(c.ae.Suggestions, sug)
	return c
}

func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.ae.Cause = err
	return c
}

// Build returns the accumulated error, or nil when no operation was set.
// The builder can be reused; later calls do not alter built errors.
func (c *ErrorContext) Build() *ActionableError {
	if c.ae.Operation == "" {
		return nil
	}
	ae := c.ae
	ae.Suggestions = slices.Clone(c.ae.Suggestions)
	return &ae
}

// BuildError is Build typed as error, so a missing operation yields a true
// nil interface rather than a typed nil pointer.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
