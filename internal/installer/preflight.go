// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"fmt"
	"os"

	"mvdan.cc/sh/v3/syntax"
)

// Preflight parses a POSIX installer script with the bash dialect and
// returns the syntax error, if any. PowerShell scripts are not checked and
// always pass. The result is advisory; callers must not block on it.
func Preflight(plan *Plan) error {
	if plan.Kind != KindPOSIX {
		return nil
	}

	f, err := os.Open(plan.ScriptPath)
	if err != nil {
		return fmt.Errorf("failed to open installer script: %w", err)
	}
	defer f.Close()

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(f, plan.ScriptPath); err != nil {
		return fmt.Errorf("installer script syntax error: %w", err)
	}
	return nil
}
