package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/clkpr/config.yml
// - macOS: ~/Library/Application Support/clkpr/config.yml
// - Windows: %APPDATA%\clkpr\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "clkpr", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// relative to the current directory.
func ProjectConfigPath() string {
	return ".clkpr.yml"
}

// LegacyProjectConfigPath returns the path to the deprecated JSON
// project config.
func LegacyProjectConfigPath() string {
	return ".clkpr.json"
}
