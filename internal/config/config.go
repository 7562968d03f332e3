// Package config loads the app's settings from ~/.folio/config.yaml.
// A missing file is not an error; defaults apply and the directory is
// created on first save through the store.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. All fields are optional.
type Config struct {
	// DataDir holds the profile JSON files. Defaults to ~/.folio/profiles.
	DataDir string `yaml:"data_dir"`
	// DefaultTemplate preselects a template in the picker.
	DefaultTemplate string `yaml:"default_template"`
	// LogFile receives structured logs. Defaults to ~/.folio/folio.log.
	LogFile string `yaml:"log_file"`
}

func configHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// Load reads the config file, fills defaults, and applies the
// FOLIO_DATA_DIR override. Absent file yields pure defaults.
func Load() (Config, error) {
	dir, err := configHome()
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	raw, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(dir, "profiles")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(dir, "folio.log")
	}
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = "modern"
	}
	if env := os.Getenv("FOLIO_DATA_DIR"); env != "" {
		cfg.DataDir = env
	}
	return cfg, nil
}
