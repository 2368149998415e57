// SPDX-License-Identifier: MPL-2.0

// Package runtime starts the installer interpreter as a child process.
//
// The child shares the parent's standard streams: when they are *os.File
// values (the normal case) the descriptors are handed to the child directly,
// so nothing is captured or buffered. Start returns a Process whose Done
// channel delivers exactly one Result once the child exits. There is no
// cancellation and no timeout; a started child always runs to completion.
package runtime
