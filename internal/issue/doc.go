// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help
// entries for each way a setup run can fail.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for the user. Catalog entries are rendered with glamour and
// shown in verbose mode.
package issue
