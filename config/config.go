// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"
	"github.com/toeirei/knownhostsxml/core/knownhosts"
	"github.com/toeirei/knownhostsxml/internal/logging"
)

const (
	configName = "knownhostsxml"
	configType = "yaml"
)

// Config is the on-disk configuration. Empty fields fall back to the
// knownhosts defaults.
type Config struct {
	Home      string `mapstructure:"home" yaml:"home,omitempty"`
	Directory string `mapstructure:"directory" yaml:"directory,omitempty"`
	FileName  string `mapstructure:"file_name" yaml:"file_name"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	NoLock    bool   `mapstructure:"no_lock" yaml:"no_lock,omitempty"`
}

// Defaults returns the values used for keys missing from the config file.
func Defaults() map[string]any {
	return map[string]any{
		"file_name": knownhosts.DefaultFileName,
		"log_level": "warn",
	}
}

// GetConfigPath returns the user config file path, e.g.
// ~/.config/knownhostsxml/knownhostsxml.yaml.
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, configName, configName+"."+configType), nil
}

// Load reads the configuration. With an explicit path that file must exist.
// With an empty path the user config directory and the working directory
// are searched, and finding nothing yields the defaults.
func Load(path string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	v.SetConfigType(configType)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		if userConfigPath, err := GetConfigPath(); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("error loading config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("error parsing config: %w", err)
	}
	return c, nil
}

// Write stores c as YAML at path, or at GetConfigPath when path is empty.
func Write(path string, c *Config) error {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, data, 0600)
}

// Options converts c into accessor options, building a stderr logger at
// LogLevel.
func (c Config) Options() (knownhosts.Options, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return knownhosts.Options{}, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return knownhosts.Options{
		Home:      c.Home,
		Directory: c.Directory,
		FileName:  c.FileName,
		Logger:    logging.New(os.Stderr, level),
		NoLock:    c.NoLock,
	}, nil
}

// NewFile builds the accessor described by c.
func (c Config) NewFile() (*knownhosts.File, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return knownhosts.New(opts), nil
}
