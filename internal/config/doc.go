// SPDX-License-Identifier: MPL-2.0

// Package config handles launcher configuration using Viper with CUE as the file format.
//
// Values are layered, lowest to highest: built-in defaults, an optional
// config.cue in the platform config directory (validated against the
// embedded #Config schema), WEZTERM_SETUP_* environment variables, and
// command-line flags bound through LoadOptions.Flags.
//
// The launcher only reads configuration; nothing here writes files.
package config
