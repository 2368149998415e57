// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/wezterm-setup/wezterm-setup/internal/issue"
	"github.com/wezterm-setup/wezterm-setup/internal/platform"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "wezterm-setup"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. WEZTERM_SETUP_SCRIPT_DIR.
	EnvPrefix = "WEZTERM_SETUP"

	// maxConfigFileSize bounds what is handed to the CUE compiler.
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.GOOSWindows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.GOOSDarwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions layers defaults, the config file, the environment and
// bound flags. It returns the resolved config file path ("" when none was
// used). The returned Config is never nil.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	defaults := DefaultConfig()

	select {
	case <-ctx.Done():
		return defaults, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetDefault("script_dir", defaults.ScriptDir)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("banner", defaults.Banner)
	v.SetDefault("preflight", defaults.Preflight)
	v.SetDefault("error_stream", string(defaults.ErrorStream))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, flag := range map[string]string{"script_dir": "script-dir", "verbose": "verbose"} {
			if f := opts.Flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return defaults, "", fmt.Errorf("failed to bind flag --%s: %w", flag, err)
				}
			}
		}
	}

	var errs []error

	resolvedPath, err := resolveConfigFile(opts)
	if err != nil {
		errs = append(errs, err)
	}
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			errs = append(errs, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the configuration schema").
				Wrap(err).
				BuildError())
			resolvedPath = ""
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		errs = append(errs, fmt.Errorf("failed to parse config: %w", err))
		return defaults, resolvedPath, errors.Join(errs...)
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion(fmt.Sprintf("Set error_stream (or %s_ERROR_STREAM) to \"stdout\" or \"stderr\"", EnvPrefix)).
			Wrap(err).
			BuildError())
		cfg.ErrorStream = defaults.ErrorStream
	}

	return &cfg, resolvedPath, errors.Join(errs...)
}

// resolveConfigFile picks the config file to read. An explicit path must
// exist; the default location is optional.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		cfgDir = dir
	}

	cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(cuePath) {
		return cuePath, nil
	}
	return "", nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigFileSize {
		return fmt.Errorf("config file is %d bytes, limit is %d", len(data), maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err)
	}

	// Merge keeps defaults underneath and env/flags above.
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// formatCUEError flattens a CUE error list into one message with positions.
func formatCUEError(err error) error {
	return errors.New(strings.TrimSpace(cueerrors.Details(err, nil)))
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
