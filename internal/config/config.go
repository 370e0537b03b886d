// Package config loads the editor's YAML settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/romycode/xx/internal/logging"
)

// LogConfig controls the session log file.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Dir     string `yaml:"dir"`
}

// Config holds the application configuration.
type Config struct {
	ShowLineNumbers bool   `yaml:"show_line_numbers"`
	ShowStatus      bool   `yaml:"show_status"`
	InitialText     string `yaml:"initial_text"`

	// Keys overrides editor bindings by action name, e.g. quit: [ctrl+q].
	Keys map[string][]string `yaml:"keys,omitempty"`

	Log LogConfig `yaml:"log"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ShowStatus: true,
		Log: LogConfig{
			Level: "info",
			Dir:   defaultLogDir(),
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = defaultLogDir()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that the YAML schema cannot.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: no keys given", action)
		}
	}
	return nil
}

func defaultLogDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "xx")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "xx")
	}
	return filepath.Join(home, ".local", "state", "xx")
}
