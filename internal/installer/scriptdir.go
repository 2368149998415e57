// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"fmt"
	"path/filepath"

	"github.com/kardianos/osext"
)

// executableFolder is swapped in tests.
var executableFolder = osext.ExecutableFolder

// ScriptDir returns override when set, otherwise the directory that holds
// the running executable with symlinks resolved, so a launcher linked into
// a bin directory still finds the scripts shipped beside its target.
func ScriptDir(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}

	dir, err := executableFolder()
	if err != nil {
		return "", fmt.Errorf("failed to locate launcher executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	return dir, nil
}
