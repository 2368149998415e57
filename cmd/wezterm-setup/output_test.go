// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"testing"

	"github.com/wezterm-setup/wezterm-setup/internal/config"
)

func TestStatusPrinter(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	p := statusPrinter{out: &out, errOut: &errOut}

	p.info("platform: %s", "linux")
	p.success("done")
	p.warn("careful")
	p.error("broken %d", 1)
	p.blank()

	wantOut := "ℹ  platform: linux\n✓  done\n⚠  careful\n\n"
	if got := out.String(); got != wantOut {
		t.Errorf("out = %q, want %q", got, wantOut)
	}
	if got := errOut.String(); got != "✗  broken 1\n" {
		t.Errorf("errOut = %q, want %q", got, "✗  broken 1\n")
	}
}

func TestErrorWriter(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if errorWriter(config.ErrorStreamStdout, &stdout, &stderr) != &stdout {
		t.Error("stdout stream should select stdout")
	}
	if errorWriter(config.ErrorStreamStderr, &stdout, &stderr) != &stderr {
		t.Error("stderr stream should select stderr")
	}
}
