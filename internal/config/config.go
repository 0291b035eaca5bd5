// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Flightcode settings from defaults, an optional
// flightcode.yaml, FLIGHTCODE_* environment variables and command flags.
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

	"github.com/adriaticflightgroup/flightcode/internal/codec"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	Base        int64                   `mapstructure:"base"`
	Count       int                     `mapstructure:"count"`
	MaxAttempts int                     `mapstructure:"max-attempts"`
	Seed        string                  `mapstructure:"seed"`
	Output      string                  `mapstructure:"output"`
	Language    string                  `mapstructure:"language"`
	Airlines    map[string]codec.Config `mapstructure:"airlines"`
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Flightcode")
		default: // Linux, macOS, etc.
			configDir = "/etc/flightcode"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "flightcode")
	}

	return filepath.Join(configDir, "flightcode.yaml"), nil
}

// LoadConfig merges defaults, config file, environment and the flags of cmd
// into a T. A missing config file is not an error; an explicitly requested
// one that cannot be read is.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("flightcode")
	v.SetConfigType("yaml")

	// 3. An explicit --config path wins over the search paths.
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("error loading config: %w", err)
		}
	}

	// 6. Read from environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("flightcode")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// 7. Flags
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// ConfigPathFromCli returns the --config value when it was set explicitly.
func ConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	flag := cmd.Flags().Lookup("config")
	if flag == nil || !flag.Changed {
		return nil, nil
	}
	path := flag.Value.String()
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}
