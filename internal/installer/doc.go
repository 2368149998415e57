// SPDX-License-Identifier: MPL-2.0

// Package installer maps a platform to the interpreter invocation that runs
// its installer script.
//
// The mapping is a fixed lookup table (see Specs). Select joins the table
// entry with a script directory and checks that the script exists; it never
// starts a process.
package installer
