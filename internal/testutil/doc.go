// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that run stub installer
// scripts, failing the test immediately when setup goes wrong.
package testutil
