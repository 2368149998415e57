// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
)

// statusPrinter writes glyph-prefixed status lines. Error lines go to errOut,
// which is the same writer as out when the original single-stream behavior
// is configured.
type statusPrinter struct {
	out    io.Writer
	errOut io.Writer
}

func (p statusPrinter) info(format string, args ...any) {
	p.line(p.out, InfoStyle.Render("ℹ"), format, args...)
}

func (p statusPrinter) success(format string, args ...any) {
	p.line(p.out, SuccessStyle.Render("✓"), format, args...)
}

func (p statusPrinter) warn(format string, args ...any) {
	p.line(p.out, WarningStyle.Render("⚠"), format, args...)
}

func (p statusPrinter) error(format string, args ...any) {
	p.line(p.errOut, ErrorStyle.Render("✗"), format, args...)
}

func (p statusPrinter) blank() {
	fmt.Fprintln(p.out)
}

func (p statusPrinter) line(w io.Writer, glyph, format string, args ...any) {
	fmt.Fprintf(w, "%s  %s\n", glyph, fmt.Sprintf(format, args...))
}
