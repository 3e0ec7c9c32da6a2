// Package config provides configuration loading and path utilities for triage.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is where the last analysis session is kept unless configured otherwise.
const DefaultDatabasePath = "$HOME/.local/share/triage/triage.db"

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "triage"), nil
}
