// Package config provides XDG path helpers.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "dozwatch"

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// DefaultLogPath returns the default log file path used by --log-file without a value.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, appName, "dozwatch.log")
}
