// Package config provides configuration path utilities.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataPath is where the database lives when no path is configured.
func DefaultDataPath() string {
	return ExpandPath("$HOME/.local/share/kasa/kasa.db")
}

// ExpandPath expands a leading ~ and $VAR style environment variables in a
// file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	} else if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
