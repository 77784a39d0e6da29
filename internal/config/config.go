// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Passbuilder settings from defaults, passbuilder.yaml,
// PASSBUILDER_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the resolved application configuration.
type Config struct {
	Log struct {
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`

	// Output is the CLI output format: text, json or yaml.
	Output string `mapstructure:"output" yaml:"output"`

	// Copy copies generated suggestions to the clipboard.
	Copy bool `mapstructure:"copy" yaml:"copy"`

	TUI struct {
		ShowPlaybook bool `mapstructure:"show_playbook" yaml:"show_playbook"`
	} `mapstructure:"tui" yaml:"tui"`
}

// Defaults returns the built-in value of every config key.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":         "info",
		"output":            "text",
		"copy":              false,
		"tui.show_playbook": true,
	}
}

// flagKeys maps command-line flag names to the config keys they override.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"output":    "output",
	"copy":      "copy",
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Passbuilder")
		default:
			configDir = "/etc/passbuilder"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "passbuilder")
	}

	return filepath.Join(configDir, "passbuilder.yaml"), nil
}

// LoadConfig resolves T from defaults, the config file, the environment and
// the flags of cmd. A missing config file is not an error; a malformed one is.
// When path is non-nil that file is read instead of searching the standard
// locations.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, path *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passbuilder")
	v.SetConfigType("yaml")
	if path != nil {
		v.SetConfigFile(*path)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("passbuilder")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, "", fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("decode config: %w", err)
	}
	return c, v.ConfigFileUsed(), nil
}

// WriteConfigFile writes c to the user or system config path and returns the
// path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
